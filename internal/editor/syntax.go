package editor

import (
	"bytes"
	"strings"
)

// Highlight classes, one tag per rendered byte.
const (
	hlNormal = iota
	hlComment
	hlMLComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

// Highlight-definition feature flags.
const (
	hlHighlightNumbers = 1 << 0
	hlHighlightStrings = 1 << 1
)

// syntax is a static, compiled-in highlight definition: keywords ending
// in "|" are secondary (Keyword2) and the "|" is not part of the match.
type syntax struct {
	filetype   string
	filematch  []string
	keywords   []string
	singleLine string
	multiStart string
	multiEnd   string
	flags      int
}

// hldb is the baseline syntax database. First match wins, so the "c"
// entry must precede "go" to keep .c/.h/.cpp files from ever matching
// the broader "go" patterns (they don't overlap, but order is part of
// the spec's selection contract).
var hldb = []syntax{
	{
		filetype:  "c",
		filematch: []string{".c", ".h", ".cpp"},
		keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		singleLine: "//",
		multiStart: "/*",
		multiEnd:   "*/",
		flags:      hlHighlightNumbers | hlHighlightStrings,
	},
	{
		filetype:  "go",
		filematch: []string{".go", ".mod", ".sum"},
		keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "goto", "if", "import", "interface", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var", "go",
			"func|",
		},
		singleLine: "//",
		multiStart: "/*",
		multiEnd:   "*/",
		flags:      hlHighlightNumbers | hlHighlightStrings,
	},
}

func isSeparator(c byte) bool {
	if c == 0 || c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' {
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[];"), c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// selectSyntaxHighlight scans hldb for a pattern matching the current
// filename: a pattern beginning with "." must equal the extension, any
// other pattern must appear as a substring of the filename. First match
// wins. Re-highlights every row on a match (also called with no rows).
func (s *Session) selectSyntaxHighlight() {
	s.syn = nil
	if s.filename == "" {
		return
	}

	ext := ""
	if i := strings.LastIndex(s.filename, "."); i != -1 {
		ext = s.filename[i:]
	}

	for i := range hldb {
		def := &hldb[i]
		for _, pattern := range def.filematch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(s.filename, pattern)) {
				s.syn = def
				for j := range s.rows {
					s.rows[j].updateSyntax(s)
				}
				return
			}
		}
	}
}

// updateSyntax is the single-pass left-to-right scanner described in
// spec §4.4. State carried across bytes within the row: prevSep,
// inString, inComment (seeded from the previous row's open-comment
// flag, since comments can span rows).
func (r *row) updateSyntax(s *Session) {
	r.hl = make([]byte, len(r.render))
	if s.syn == nil {
		return
	}
	def := s.syn

	scs, mcs, mce := []byte(def.singleLine), []byte(def.multiStart), []byte(def.multiEnd)

	prevSep := true
	var inString byte
	inComment := r.idx > 0 && r.idx-1 < len(s.rows) && s.rows[r.idx-1].hlOpenComment

	render := r.render
	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := byte(hlNormal)
		if i > 0 {
			prevHl = r.hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				r.hl[j] = hlComment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				r.hl[i] = hlMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce); j++ {
						r.hl[i+j] = hlMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs); j++ {
					r.hl[i+j] = hlMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if def.flags&hlHighlightStrings != 0 {
			if inString != 0 {
				r.hl[i] = hlString
				if c == '\\' && i+1 < len(render) {
					r.hl[i+1] = hlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				r.hl[i] = hlString
				i++
				continue
			}
		}

		if def.flags&hlHighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == hlNumber)) || (c == '.' && prevHl == hlNumber) {
				r.hl[i] = hlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			matched := false
			for _, kw := range def.keywords {
				class := byte(hlKeyword1)
				text := kw
				if strings.HasSuffix(kw, "|") {
					class = hlKeyword2
					text = kw[:len(kw)-1]
				}
				klen := len(text)
				if klen == 0 || !bytes.HasPrefix(render[i:], []byte(text)) {
					continue
				}
				if i+klen < len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				for k := 0; k < klen; k++ {
					r.hl[i+k] = class
				}
				i += klen
				matched = true
				break
			}
			if matched {
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	changed := r.hlOpenComment != inComment
	r.hlOpenComment = inComment
	if changed && r.idx+1 < len(s.rows) {
		s.rows[r.idx+1].updateSyntax(s)
	}
}

func syntaxColor(hl byte) int {
	switch hl {
	case hlComment, hlMLComment:
		return colorComment
	case hlKeyword1:
		return colorKeyword1
	case hlKeyword2:
		return colorKeyword2
	case hlString:
		return colorString
	case hlNumber:
		return colorNumber
	case hlMatch:
		return colorMatch
	default:
		return colorDefault
	}
}
