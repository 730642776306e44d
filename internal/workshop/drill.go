package workshop

import (
	"fmt"

	"github.com/osse101/Toolbox_Go/internal/domain"
	"github.com/osse101/Toolbox_Go/internal/menu"
	"github.com/osse101/Toolbox_Go/internal/tool"
)

func (w *Workshop) drillMenu(key string, d *tool.Drill) func() menu.Menu {
	return func() menu.Menu {
		power := powerCorded
		if d.Cordless {
			power = powerCordless
		}
		return menu.Menu{
			Banner: fmt.Sprintf(BannerDrill, d.Weight(), d.Name(), power),
			Title:  useMenuTitle(d),
			Options: []menu.Option{
				w.action(key, d, domain.ActionDrillHole, func() error {
					report, err := d.DrillHole()
					if err != nil {
						return err
					}
					w.render(report)
					return nil
				}),
				w.action(key, d, domain.ActionChangeBit, func() error {
					choice, err := w.pick(PickBitsHeader, PickBitsPrompt, optionLabels(d.Bits(), labelPlain))
					if err != nil {
						return err
					}
					bit, err := d.ChangeBit(choice)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgBitChanged, bit)
					return nil
				}),
				w.action(key, d, domain.ActionAdjustSpeed, func() error {
					input, err := w.console.Prompt(tool.MsgSpeedPrompt)
					if err != nil {
						return err
					}
					speed, err := d.AdjustSpeed(input)
					if err != nil {
						return err
					}
					w.console.Success(tool.MsgSpeedAdjusted, speed)
					return nil
				}),
			},
		}
	}
}
