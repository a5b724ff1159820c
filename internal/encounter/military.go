package encounter

import (
	"context"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

const bunkerSurvivorChance = 0.4

func militaryBase(ctx context.Context, s *entity.Scene) {
	p, out := s.Party, s.Out

	out.Print("You seem to have parked just outside an old military base")
	out.Ellipsis()
	out.PrintLine("\nThere are no guards in sight.")
	out.Pause()
	out.PrintLine("You enter the building...")
	out.Wait()
	out.PrintLine("You encounter a small room with a large blast door to one side.")
	out.Pause()
	out.PrintLine("A small panel to the bottom right says \"Emergency lockdown, do not open without higher approval.\"")
	out.Pause()
	out.PrintLine("Despite the warning, there is a key sitting on the control panel.")
	out.Pause()

	if ui.AskYesNo(out, "Do you open the door?") {
		out.Print("You turn the key in the control panel")
		out.Ellipsis()
		out.PrintLine("")
		if s.Rand.Chance(bunkerSurvivorChance) {
			n := s.Rand.IntRange(1, 2)
			if n > 1 {
				ui.Linef(out, "%d survivors rush out of the room, gasping for fresh air.", n)
			} else {
				out.PrintLine("A survivor rushes out of the room, gasping for fresh air.")
			}
			out.Pause()
			for i := 0; i < n; i++ {
				m := s.Recruit(gamedata.TierMilitary)
				out.PrintLine("You are joined by " + m.String())
				out.Wait()
				p.PushBack(m)
			}
			out.PrintLine("They explain that they had locked themselves in the bunker for safety, and thank you for releasing them.")
		} else {
			n := s.Rand.IntRange(4, 5)
			ui.Linef(out, "Not a second after the door opens, %d zombies leap from the room and attack you!", n)
			s.Combat(ctx, n)
			if p.Extinct() {
				return
			}
			out.Print("You trudge on, slightly on-edge after that encounter")
			out.Ellipsis()
			out.PrintLine("")
		}
	} else {
		out.Print("You continue onwards, it's not worth the risk")
		out.Ellipsis()
		out.PrintLine("")
	}
	out.Wait()

	out.Print("You stumble across a weapons locker")
	out.Ellipsis()
	out.PrintLine("\nAll weapons have been taken, but there is still plenty of ammo.")
	out.Pause()
	ammo := s.Rand.IntRange(5, 9)
	ui.Linef(out, "+%d ammo", ammo)
	p.Ammo += ammo
	out.Wait()
}
