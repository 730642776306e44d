package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) screwdriverMenu(key string, s *tool.Screwdriver) func() menu.Menu {
	return func() menu.Menu {
		return menu.Menu{
			Banner: fmt.Sprintf(BannerScrewdriver, s.Weight(), s.Name(), s.TipType),
			Title:  useMenuTitle(s),
			Options: []menu.Option{
				w.action(key, s, domain.ActionTightenLoosen, func() error {
					report, err := s.TightenLoosen()
					if err != nil {
						return err
					}
					w.render(report)
					return nil
				}),
				w.action(key, s, domain.ActionChangeTip, func() error {
					choice, err := w.pick(PickTipsHeader, PickTipsPrompt, optionLabels(s.Tips(), labelTip))
					if err != nil {
						return err
					}
					tip, err := s.ChangeTip(choice)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgTipChanged, tip)
					return nil
				}),
				w.action(key, s, domain.ActionToggleMagnetize, func() error {
					if s.ToggleMagnetization() {
						w.console.Info("%s", tool.MsgMagnetized)
					} else {
						w.console.Info("%s", tool.MsgUnmagnetized)
					}
					return nil
				}),
			},
		}
	}
}
