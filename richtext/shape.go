package richtext

// ShapeText 按贪心算法把 tokens 排进宽度为 avail 的行。
//
// 超出判断使用严格大于：恰好填满剩余宽度的词留在当前行。
// BreakWord/BreakAll 的词在整体宽度超过 avail 时按字形拆分。
// 行首（x 为 0）放不下的词不先输出断行，避免产生空的首行。
// 分隔符词只在后面的词能放进同一行时才输出，并计入该行宽度；行首与行尾的分隔符被丢弃。
// 每次迭代至少消耗一个词或一个字形，因此零宽测量也不会死循环。
// 断行事件的参数是下一行第一个词的序号（不计断行与分隔符）。
func (s *Shaper) ShapeText(avail float64, tokens []Token, styles StyleAccessor, rec Recorder, m Measurer) {
	x := 0.0
	next := 0
	empty := true
	var gap *Word
	for pos, tok := range tokens {
		if tok.Kind == TokenLineBreak {
			rec.RecordLineBreak(next)
			x, empty, gap = 0, true, nil
			continue
		}

		w := tok.Word
		var ws WordStyle
		if styles != nil {
			ws = styles(pos, w)
		}
		size := m.Measure(w.Text, ws.Font, ws.Font.Size, -1)
		w.Width, w.Height = size.W, size.H

		if w.Separator {
			if !empty {
				gap = &w
			}
			continue
		}
		index := next
		next++
		sep := 0.0
		if gap != nil {
			sep = gap.Width
		}

		if ws.Break.splitsWords() && w.Width > avail {
			if x > 0 {
				rec.RecordLineBreak(index)
			}
			gap = nil
			x = s.splitWord(avail, index, w, ws, rec, m)
			empty = false
			continue
		}

		if x > 0 && x+sep+w.Width > avail {
			rec.RecordLineBreak(index)
			x, gap = 0, nil
		}
		if gap != nil {
			rec.RecordWord(*gap)
			x += gap.Width
			gap = nil
		}
		rec.RecordWord(w)
		x += w.Width
		empty = false
	}
}

// splitWord 逐字形累计宽度，放不下时输出片段并断行。返回最后一个片段的宽度。
func (s *Shaper) splitWord(avail float64, index int, w Word, ws WordStyle, rec Recorder, m Measurer) float64 {
	text := w.Text
	from, acc := 0, 0.0
	for i := 0; i < len(text); {
		n := s.step(text, i)
		g := m.Measure(text[i:i+n], ws.Font, ws.Font.Size, -1)
		if acc > 0 && acc+g.W > avail {
			rec.RecordWord(Word{Index: w.Index, Text: text[from:i], Width: acc, Height: w.Height})
			rec.RecordLineBreak(index)
			from, acc = i, 0
		}
		acc += g.W
		i += n
	}
	if from < len(text) {
		rec.RecordWord(Word{Index: w.Index, Text: text[from:], Width: acc, Height: w.Height})
	}
	return acc
}
