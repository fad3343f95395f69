package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"sttp/pkg/domain"
)

const (
	eventPrefix        = "_"
	eventLabel         = "EVT"
	timedTriggerPrefix = "__"
)

type triggerKind int

const (
	triggerPlain triggerKind = iota
	triggerEvent
	triggerTimed
)

// trigger is the classified form of a raw trigger cell. Classification
// happens once, during normalization; consumers only ever see the rendered
// label.
type trigger struct {
	kind    triggerKind
	name    string // plain text, or event name without the leading underscore
	seconds int
}

func (t trigger) label() string {
	switch t.kind {
	case triggerTimed:
		return fmt.Sprintf("(after %d sec.)", t.seconds)
	case triggerEvent:
		return fmt.Sprintf("%s_%s", eventLabel, t.name)
	default:
		return t.name
	}
}

// classifyTrigger resolves a raw trigger cell against the row's destination.
// An omitted trigger becomes an event named after the destination; the
// synthesized string is classified like any other, so a destination that
// itself starts with "_" yields a timed candidate.
func classifyTrigger(raw, dest string) (trigger, error) {
	if raw == "" {
		raw = eventPrefix + dest
	}
	if strings.HasPrefix(raw, timedTriggerPrefix) {
		suffix := strings.TrimPrefix(raw, timedTriggerPrefix)
		seconds, err := strconv.Atoi(suffix)
		if err != nil {
			return trigger{}, fmt.Errorf(
				"%w: a %q prefix indicates a timed transition and must be followed by a number of seconds, got %q",
				domain.ErrInvalidTimedTrigger, timedTriggerPrefix, suffix)
		}
		return trigger{kind: triggerTimed, seconds: seconds}, nil
	}
	if strings.HasPrefix(raw, eventPrefix) {
		return trigger{kind: triggerEvent, name: strings.TrimPrefix(raw, eventPrefix)}, nil
	}
	return trigger{kind: triggerPlain, name: raw}, nil
}

// normalizer resolves raw rows into transitions, carrying the source state
// across rows so authors can leave the column blank for grouped transitions
// from the same state.
type normalizer struct {
	previousSource string
}

// normalize resolves one raw (source, dest, trigger) row. Field resolution
// order matters: source carry-over depends on the raw source, while trigger
// classification depends on the resolved destination.
func (n *normalizer) normalize(row []string) (domain.Transition, error) {
	source, dest, rawTrigger := row[0], row[1], row[2]

	if source == "" {
		if n.previousSource == "" {
			return domain.Transition{}, &domain.RowError{Row: row, Err: domain.ErrMissingSource}
		}
		source = n.previousSource
	} else {
		n.previousSource = source
	}

	if dest == "" {
		return domain.Transition{}, &domain.RowError{Row: row, Err: domain.ErrMissingDest}
	}

	trig, err := classifyTrigger(rawTrigger, dest)
	if err != nil {
		return domain.Transition{}, &domain.RowError{Row: row, Err: err}
	}

	return domain.Transition{Trigger: trig.label(), Source: source, Dest: dest}, nil
}
