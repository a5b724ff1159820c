package encounter

import (
	"context"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

const medicineChance = 0.7

func tradeWell(_ context.Context, s *entity.Scene) {
	p, out := s.Party, s.Out

	out.PrintLine("As you step out of the mystery machine, you spot a small well nearby.")
	out.Pause()
	out.Print("There is a small bucket hanging from a frayed-looking rope")
	out.Ellipsis()
	out.PrintLine("\nIt looks like there is a small $ sign scratched onto the surface of the bucket.")
	out.Pause()
	out.Print("You call out into the well")
	out.Ellipsis()
	out.PrintLine(" Vague shuffling is heard, but no-one responds.")
	out.Wait()

	medicine := s.Rand.Chance(medicineChance)
	noun, stock := "ammo", &p.Ammo
	if medicine {
		noun, stock = "medicine", &p.Medicine
	}

	initial := s.Rand.IntRange(2, 3)
	if medicine {
		out.PrintLine("Looking inside the bucket, there are a couple tablets of medicine.")
	} else {
		out.PrintLine("Looking inside the bucket, there are a couple shotgun shells.")
	}
	out.Pause()
	ui.Linef(out, "+%d %s", initial, noun)
	*stock += initial
	out.Wait()

	ui.Linef(out, "You have %d money.", p.Money)
	out.Pause()
	amount := ui.AskAmount(out, "How much money do you put into the bucket? ", p.Money)
	if amount == 0 {
		out.PrintLine("You leave the bucket.")
	} else {
		p.Money -= amount
		out.Print("Almost immediately after placing the money in the bucket, it begins descending down into the dark below")
		out.Ellipsis()
		out.Print("\nJust as you begin to think whoever is down there has just taken your money and left, the bucket begins rising back up again")
		out.Ellipsis()
		out.PrintLine("")
		switch {
		case medicine && amount > 1:
			ui.Linef(out, "In the bucket, there are exactly %d loose antibiotic tablets, as expected.", amount)
		case medicine:
			out.PrintLine("In the bucket, is a single antibiotic tablet, as expected.")
		case amount > 1:
			ui.Linef(out, "In the bucket there are exactly %d shells, as expected.", amount)
		default:
			out.PrintLine("In the bucket, is a single shotgun shell, as expected.")
		}
		out.Pause()
		*stock += amount
		ui.Linef(out, "+%d %s", amount, noun)
		out.Pause()
		ui.Linef(out, "-%d money", amount)
	}
	out.Wait()

	out.Print("As soon as you turn around from the well the rope snaps,")
	out.Pause()
	out.Print(" leaving the bucket to fall down into the well with a crash")
	out.Ellipsis()
	out.PrintLine("\nAn anguished screech is heard from inside the well.")
	out.Pause()
	out.PrintLine("You decide not to stick around.")
}
