package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) tapeMenu(key string, m *tool.MeasuringTape) func() menu.Menu {
	return func() menu.Menu {
		return menu.Menu{
			Banner: fmt.Sprintf(BannerTape, m.Name(), m.Material(), m.Weight(), tool.FormatMeters(m.Length)),
			Title:  useMenuTitle(m),
			Options: []menu.Option{
				w.action(key, m, domain.ActionMeasureWood, func() error {
					length, err := m.Measure(w.rng)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgMeasured, length)
					return nil
				}),
				w.action(key, m, domain.ActionMarkIntervals, func() error { return w.markIntervals(m) }),
			},
		}
	}
}

// markIntervals checks durability before asking for the interval so a
// broken tape never prompts
func (w *Workshop) markIntervals(m *tool.MeasuringTape) error {
	if err := tool.Guard(m, tool.ActivityMarkIntervals); err != nil {
		return err
	}

	input, err := w.console.Prompt(tool.MsgIntervalPrompt)
	if err != nil {
		return err
	}

	marks, err := m.MarkIntervals(input)
	if err != nil {
		return err
	}

	w.console.Println(fmt.Sprintf(tool.MsgMarkingStart, tool.FormatMeters(marks[0].Distance)))
	for _, mark := range marks {
		w.console.Println(fmt.Sprintf(tool.MsgMark, mark.Index, tool.FormatMeters(mark.Distance)))
	}
	w.console.Success("%s", tool.MsgIntervalsMarked)
	return nil
}
