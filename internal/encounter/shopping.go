package encounter

import (
	"context"
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

const shriekSurvivorChance = 0.5

func shoppingCentre(ctx context.Context, s *entity.Scene) {
	p, out := s.Party, s.Out

	out.PrintLine("You step out of the mystery machine to discover you have parked just outside an old shopping centre.")
	out.Pause()
	out.Print("The party begins to explore the building")
	out.Ellipsis()
	food := s.Rand.IntRange(4, 8)
	p.Food += food
	out.PrintLine("\nAfter looting what was left of the shops, you manage to salvage some food!")
	out.Pause()
	ui.Linef(out, "+%d food", food)
	out.Wait()

	out.Print("You continue searching")
	out.Ellipsis()
	out.PrintLine("\nThe party discovers a small snack machine, it appears to still be working.")
	out.Pause()
	snackMachine(s)

	out.Print("It's very dark now")
	out.Ellipsis()
	out.PrintLine(" The building's power reserves must have finally been exhausted.")
	out.Pause()
	out.PrintLine("Suddenly, a terrible shriek is heard from another part of the building.")
	out.Pause()

	if ui.AskYesNo(out, "Do you attempt to locate it?") {
		out.Print("You rush towards the sound")
		out.Ellipsis()
		out.PrintLine("")
		zombies := s.Rand.IntRange(4, 6)
		if s.Rand.Chance(shriekSurvivorChance) {
			out.PrintLine("Through the dark, you spot someone sprinting away from a few zombies...")
			out.Pause()
			m := s.Recruit(gamedata.TierShopping)
			out.PrintLine(m.String())
			p.PushBack(m)
		} else {
			zombies++
			ui.Linef(out, "Through the dark, you spot a mob of %d zombies lurching around the building.", zombies)
			out.Pause()
			out.Print("You were too late")
			out.Ellipsis()
			out.PrintLine("\nSuddenly, you are spotted, and the mob lunges towards you...")
		}
		out.Wait()
		s.Combat(ctx, zombies)
		if p.Extinct() {
			return
		}
	} else {
		out.PrintLine("It's not worth it.")
	}

	out.Print("You leave the shopping centre")
	out.Ellipsis()
	out.PrintLine("")
}

// snackMachine trades coins for snacks. The machine gives out after a
// random number of items and swallows one extra coin if overpaid.
func snackMachine(s *entity.Scene) {
	p, out := s.Party, s.Out

	prompt := fmt.Sprintf("You have %d money, how much would you like to pay into the machine? ", p.Money)
	amount := ui.AskAmount(out, prompt, p.Money)
	if amount == 0 {
		out.Print("You leave the machine")
		out.Ellipsis()
		out.PrintLine("\nAs you walk away, the power in the building shuts off.")
		out.Pause()
		return
	}

	if amount > 1 {
		ui.Printf(out, "You begin putting %d coins into the machine", amount)
	} else {
		out.Print("You put a coin into the machine")
	}
	out.Ellipsis()
	out.PrintLine("")

	limit := s.Rand.IntRange(5, 7)
	snacks := min(limit, amount)
	spent := min(limit+1, amount)
	if snacks > 1 {
		ui.Printf(out, "One by one, the machine spits out %d small snack items", snacks)
	} else {
		out.Print("The machine spits out a small snack item")
	}
	out.Ellipsis()
	out.PrintLine(" It's not much, but it will do.")
	out.Pause()
	if spent > limit {
		out.PrintLine("As you put another coin into the machine, the power shuts off.")
		out.Pause()
		out.Print("The coin is stuck somewhere in the internals of the machine, ")
		out.Pause()
		out.PrintLine("and you give up trying to retrieve it.")
	} else {
		out.PrintLine("As the last item leaves the machine, the power in the building shuts off.")
	}
	out.Pause()
	p.Food += snacks
	p.Money -= spent
	ui.Linef(out, "+%d food", snacks)
	out.Pause()
	ui.Linef(out, "-%d money", spent)
	out.Wait()
}
