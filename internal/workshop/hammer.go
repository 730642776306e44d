package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) hammerMenu(key string, h *tool.Hammer) func() menu.Menu {
	return func() menu.Menu {
		return menu.Menu{
			Banner: fmt.Sprintf(BannerHammer, h.Name(), h.Material(), h.Weight(), h.HandleLength),
			Title:  useMenuTitle(h),
			Options: []menu.Option{
				w.action(key, h, domain.ActionStrikeNail, func() error { return w.strike(h) }),
				w.action(key, h, domain.ActionRemoveNails, func() error {
					report, err := h.RemoveNails()
					if err != nil {
						return err
					}
					w.render(report)
					return nil
				}),
			},
		}
	}
}

// strike waits for Enter before showing each blow. The hammer has already
// taken the wear for every blow when the first prompt appears.
func (w *Workshop) strike(h *tool.Hammer) error {
	report, err := h.Strike(w.rng)
	if err != nil {
		return err
	}

	w.console.Println(report.Start)
	for _, step := range report.Steps {
		if err := w.console.PauseWith(fmt.Sprintf(MsgStrikePromptFormat, step.Number)); err != nil {
			return err
		}
		if step.Final {
			w.console.Success("%s", step.Message())
		} else {
			w.console.Println(step.Message())
		}
	}
	return nil
}
