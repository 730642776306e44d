package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) sawMenu(key string, s *tool.Saw) func() menu.Menu {
	return func() menu.Menu {
		return menu.Menu{
			Banner: fmt.Sprintf(BannerSaw, s.Name(), s.BladeType),
			Title:  useMenuTitle(s),
			Options: []menu.Option{
				w.action(key, s, domain.ActionCutWood, func() error {
					report, err := s.Cut(w.rng)
					if err != nil {
						return err
					}
					w.render(report)
					return nil
				}),
				w.action(key, s, domain.ActionReplaceBlade, func() error {
					choice, err := w.pick(PickBladesHeader, PickBladesPrompt, optionLabels(s.Blades(), labelBlade))
					if err != nil {
						return err
					}
					blade, err := s.ReplaceBlade(choice)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgBladeChange, blade)
					return nil
				}),
			},
		}
	}
}
