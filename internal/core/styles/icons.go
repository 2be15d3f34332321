package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Toast level icons.
var (
	IconNotifyInfo    = "" // 
	IconNotifySuccess = "" // 
	IconNotifyWarning = "" // 
	IconNotifyError   = "" // 
)

// Meal type icons.
var (
	IconBreakfast = ""     // 
	IconLunch     = "\U000F025A" // 󰉚
	IconDinner    = ""     // 
	IconSnack     = "\U000F0035" // 󰀵
)

var (
	IconDumbbell = "\U000F04DE" // 󰓞
	IconScale    = "\U000F0A7A" // 󰩺
	IconFire     = ""     // 
	IconTrophy   = "\U000F0538" // 󰔸
	IconLock     = ""     // 
	IconChat     = "\U000F0369" // 󰍩
	IconChart    = "\U000F0128" // 󰄨
	IconCheck    = ""     // 
	IconCircle   = ""     // 
	IconStar     = ""     // 
	IconTimer    = "\U000F13AB" // 󱎫
)
