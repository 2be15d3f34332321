// Package trainer implements Kenji, the canned-response fitness sensei that
// answers in the trainer tab.
package trainer

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/dojo/internal/core/logging"
	"github.com/colonyops/dojo/internal/fitness"
)

// ErrEmptyMessage is returned when sending a blank message.
var ErrEmptyMessage = errors.New("message is empty")

// Responses are the replies Kenji picks from.
var Responses = []string{
	"Remember, it's not just about how much you lift, it's about your form. Quality over quantity, hero!",
	"When you feel like giving up, that's when you need to push through. Your body is stronger than you think!",
	"Rest days are as important as workout days. That's when your muscles grow stronger!",
	"Hydration is key! Make sure you're drinking enough water during your workouts.",
	"Everyone starts somewhere. Don't compare your beginning to someone else's middle chapter!",
	"You're doing great! Every workout brings you closer to your goals.",
	"Try incorporating active recovery into your routine - light walks or gentle stretching can help reduce muscle soreness.",
	"Nutrition is just as important as exercise. Make sure you're fueling your body properly!",
	"Remember to track your progress! It's the best way to see how far you've come.",
	"Mental fitness is just as important as physical fitness. Take care of your mind too!",
}

// SuggestedQuestions are offered as one-key prompts.
var SuggestedQuestions = []string{
	"How do I improve my form?",
	"What should I eat after a workout?",
	"How many rest days should I take?",
	"I'm feeling sore, what should I do?",
	"How to stay motivated?",
	"Is my workout plan effective?",
}

// Options configures a Trainer.
type Options struct {
	History []fitness.ChatMessage
	// Rand picks replies. Defaults to a time-seeded source.
	Rand *rand.Rand
	Now  func() time.Time
}

// Trainer holds the chat history. It is safe for concurrent use.
type Trainer struct {
	mu      sync.Mutex
	history []fitness.ChatMessage
	rng     *rand.Rand
	now     func() time.Time
	seq     int
	log     zerolog.Logger
}

// New creates a Trainer seeded with opts.History.
func New(opts Options) *Trainer {
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Trainer{
		history: slices.Clone(opts.History),
		rng:     opts.Rand,
		now:     opts.Now,
		seq:     len(opts.History),
		log:     logging.Component("trainer"),
	}
}

// Send appends a user message. Surrounding whitespace is trimmed and blank
// messages are rejected.
func (t *Trainer) Send(text string) (fitness.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return fitness.ChatMessage{}, ErrEmptyMessage
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	msg := t.appendLocked(fitness.SenderUser, text)
	t.log.Debug().Str("id", msg.ID).Msg("user message")
	return msg, nil
}

// Reply appends a random canned response from Kenji.
func (t *Trainer) Reply() fitness.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := Responses[t.rng.IntN(len(Responses))]
	msg := t.appendLocked(fitness.SenderBot, text)
	t.log.Debug().Str("id", msg.ID).Msg("trainer reply")
	return msg
}

// History returns every message, oldest first.
func (t *Trainer) History() []fitness.ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.history)
}

func (t *Trainer) appendLocked(sender fitness.Sender, text string) fitness.ChatMessage {
	t.seq++
	msg := fitness.ChatMessage{
		ID:        "m" + strconv.Itoa(t.seq),
		Sender:    sender,
		Text:      text,
		Timestamp: t.now(),
	}
	t.history = append(t.history, msg)
	return msg
}
