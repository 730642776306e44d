package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) wrenchMenu(key string, wr *tool.Wrench) func() menu.Menu {
	turn := func(fn func() (tool.Report, error)) func() error {
		return func() error {
			report, err := fn()
			if err != nil {
				return err
			}
			w.render(report)
			return nil
		}
	}

	return func() menu.Menu {
		return menu.Menu{
			Banner: fmt.Sprintf(BannerWrench, wr.Name(), wr.Size, wr.Material(), wr.Weight()),
			Title:  useMenuTitle(wr),
			Options: []menu.Option{
				w.action(key, wr, domain.ActionTightenBolt, turn(wr.Tighten)),
				w.action(key, wr, domain.ActionLoosenBolt, turn(wr.Loosen)),
				w.action(key, wr, domain.ActionChangeSize, func() error {
					choice, err := w.pick(PickSizesHeader, PickSizesPrompt, optionLabels(wr.Sizes(), labelSizeMM))
					if err != nil {
						return err
					}
					size, err := wr.ChangeSize(choice)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgSizeChanged, size)
					return nil
				}),
				w.action(key, wr, domain.ActionToggleRatcheting, func() error {
					if wr.ToggleRatcheting() {
						w.console.Info("%s", tool.MsgRatcheting)
					} else {
						w.console.Info("%s", tool.MsgNonRatcheting)
					}
					return nil
				}),
			},
		}
	}
}
