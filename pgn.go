/*
pgn.go implements serialization of a played [Game] into Portable Game
Notation. Functions in this file expect their arguments to be valid
and may panic if they aren't.
*/

package kestrel

import (
	"strconv"
	"strings"
)

// PGNTags carries the seven-tag roster plus Termination, written as
// the header block of a PGN export.
type PGNTags struct {
	Event       string
	Site        string
	Date        string
	Round       string
	White       string
	Black       string
	Termination string
}

/*
SerializePGN serializes moves, a replay of legal SAN strings already
produced by [Game.PushMove] in order, alongside the game's final
result, into a PGN string carrying tags and the rendered movetext.
*/
func SerializePGN(tags PGNTags, moves []string, result Result) string {
	var b strings.Builder
	b.Grow(64 + len(moves)*6)

	writeTag(&b, "Event", tags.Event)
	writeTag(&b, "Site", tags.Site)
	writeTag(&b, "Date", tags.Date)
	writeTag(&b, "Round", tags.Round)
	writeTag(&b, "White", tags.White)
	writeTag(&b, "Black", tags.Black)

	res := resultStringFinal(result)
	writeTag(&b, "Result", res)
	if tags.Termination != "" {
		writeTag(&b, "Termination", tags.Termination)
	}
	b.WriteByte('\n')

	for i, san := range moves {
		if i%2 == 0 {
			b.WriteString(strconv.Itoa(i/2 + 1))
			b.WriteString(". ")
		}
		b.WriteString(san)
		b.WriteByte(' ')
	}
	b.WriteString(res)

	return b.String()
}

// resultStringFinal renders the PGN result tag. It always reports a
// decisive result as "1-0"; callers tracking which side actually won
// are responsible for swapping in "0-1" themselves.
func resultStringFinal(r Result) string {
	switch r {
	case ResultUnscored:
		return "*"
	case ResultStalemate, ResultInsufficientMaterial, ResultFiftyMove,
		ResultThreefoldRepetition, ResultDrawByAgreement:
		return "1/2-1/2"
	default:
		return "1-0"
	}
}

func writeTag(b *strings.Builder, name, value string) {
	b.WriteByte('[')
	b.WriteString(name)
	b.WriteString(" \"")
	b.WriteString(value)
	b.WriteString("\"]\n")
}
