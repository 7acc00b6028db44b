package engine

import (
	"strconv"
	"strings"
)

// MateScore is the sentinel centipawn value for a forced mate. A reported
// "score mate N" becomes +MateScore for N > 0 and -MateScore otherwise.
const MateScore = 10000

// Score is a single evaluation from the engine, in centipawns from the
// perspective of the side to move. OK is false when the engine finished
// without reporting any score; callers treat that as "no data".
type Score struct {
	CP   int
	Mate bool
	OK   bool
}

// Pawns returns the score in pawns.
func (s Score) Pawns() float64 {
	return float64(s.CP) / 100
}

// Event is one parsed line of engine output. Lines that carry nothing the
// caller needs parse to nil.
type Event interface {
	isEvent()
}

// InfoEvent carries the score and/or principal variation from an "info" line.
type InfoEvent struct {
	Score *Score
	PV    []string
}

// BestMoveEvent terminates a search. Move may be "(none)" for dead positions.
type BestMoveEvent struct {
	Move   string
	Ponder string
}

func (InfoEvent) isEvent()     {}
func (BestMoveEvent) isEvent() {}

// ParseLine parses one line of UCI output into a typed event, so the rest of
// the package never string-matches raw engine chatter.
func ParseLine(raw string) Event {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "bestmove":
		if len(fields) < 2 {
			return nil
		}
		ev := BestMoveEvent{Move: fields[1]}
		if len(fields) >= 4 && fields[2] == "ponder" {
			ev.Ponder = fields[3]
		}
		return ev
	case "info":
		ev := InfoEvent{}
		for i := 1; i < len(fields); i++ {
			switch fields[i] {
			case "score":
				if sc, n := parseScore(fields[i+1:]); sc != nil {
					ev.Score = sc
					i += n
				}
			case "pv":
				// The pv runs to the end of the line.
				ev.PV = fields[i+1:]
				i = len(fields)
			}
		}
		if ev.Score == nil && len(ev.PV) == 0 {
			return nil
		}
		return ev
	}
	return nil
}

func parseScore(fields []string) (*Score, int) {
	if len(fields) < 2 {
		return nil, 0
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, 0
	}
	switch fields[0] {
	case "cp":
		return &Score{CP: n, OK: true}, 2
	case "mate":
		// mate 0 means the side to move is already checkmated, so it
		// counts against them like any negative mate distance.
		cp := MateScore
		if n <= 0 {
			cp = -MateScore
		}
		return &Score{CP: cp, Mate: true, OK: true}, 2
	}
	return nil, 0
}
