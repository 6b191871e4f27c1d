package sink

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
)

// emuPerCM is the number of English Metric Units in one centimetre.
const emuPerCM = 360000

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func emu(cm float64) int64 { return int64(math.Round(cm * emuPerCM)) }

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats a centimetre value for SVG with at most four decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
