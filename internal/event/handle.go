package event

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

const (
	// cutChance is the chance that collecting money infects a member.
	cutChance = 0.3
	// cutInfection is the infection gained from the cut.
	cutInfection = 10
)

// Handle applies e to the scene's party, then clamps the party's resources.
func Handle(ctx context.Context, s *entity.Scene, e Event) {
	logger.Log.WithFields(logrus.Fields{
		"kind":   e.Kind.String(),
		"amount": e.Amount,
	}).Debug("Handling event")

	switch e.Kind {
	case Money:
		money(s, e.Amount)
	case Ammo:
		ammo(s, e.Amount)
	case Fuel:
		fuel(s, e.Amount)
	case Food:
		food(s, e.Amount)
	case Zombie:
		zombie(ctx, s, e.Amount)
	case Survivor:
		survivor(s, e.Amount)
	case Nothing:
		nothing(s)
	}

	s.Party.Normalise()
}

func money(s *entity.Scene, amount int) {
	p := s.Party
	s.Out.Print("You search through an abandoned car")
	s.Out.Ellipsis()
	s.Out.PrintLine("\nThere is some loose change in the glovebox.")
	s.Out.Pause()
	ui.Linef(s.Out, "+%d money", amount)
	p.Money += amount

	if len(p.Members) > 0 && s.Rand.Chance(cutChance) {
		m := p.PopBack()
		s.Out.Pause()
		ui.Linef(s.Out, "%s cuts their hand on the broken window on the way out.", m.Name)
		s.Out.Pause()
		s.Out.PrintLine("The wound does not look clean...")
		m.Infection += cutInfection
		p.PushFront(m)
	}
	s.Out.Wait()
}

func ammo(s *entity.Scene, amount int) {
	if amount >= 0 {
		s.Out.Print("You find a box of shotgun shells in an abandoned police cruiser")
		s.Out.Ellipsis()
		s.Out.PrintLine("")
		s.Out.Pause()
		ui.Linef(s.Out, "+%d ammo", amount)
	} else {
		s.Out.Print("The party wades through a flooded underpass")
		s.Out.Ellipsis()
		s.Out.PrintLine("\nSome of the shotgun shells got soaked and are ruined.")
		s.Out.Pause()
		ui.Linef(s.Out, "%d ammo", amount)
	}
	s.Party.Ammo += amount
	s.Out.Wait()
}

func fuel(s *entity.Scene, amount int) {
	s.Out.Print("You siphon fuel from a wrecked truck")
	s.Out.Ellipsis()
	s.Out.PrintLine("")
	s.Out.Pause()
	ui.Linef(s.Out, "+%d fuel", amount)
	s.Party.Fuel += amount
	s.Out.Wait()
}

func food(s *entity.Scene, amount int) {
	p := s.Party
	if amount < 0 {
		amount = max(amount, -p.Food)
	}

	switch {
	case amount > 0:
		s.Out.Print("You raid the pantry of an empty house")
		s.Out.Ellipsis()
		s.Out.PrintLine("\nThere are still a few tins left on the shelves.")
		s.Out.Pause()
		ui.Linef(s.Out, "+%d food", amount)
	case amount < 0:
		s.Out.Print("A foul smell is coming from the back of the mystery machine")
		s.Out.Ellipsis()
		s.Out.PrintLine("\nSome of the food has spoiled.")
		s.Out.Pause()
		ui.Linef(s.Out, "%d food", amount)
	default:
		s.Out.Print("A foul smell is coming from the back of the mystery machine")
		s.Out.Ellipsis()
		s.Out.PrintLine("\nLuckily there was no food left to spoil.")
	}
	p.Food += amount
	s.Out.Wait()
}

func zombie(ctx context.Context, s *entity.Scene, amount int) {
	if amount > 1 {
		ui.Printf(s.Out, "While searching the area, %d zombies lurch out from behind a building", amount)
	} else {
		s.Out.Print("While searching the area, a zombie lurches out from behind a building")
	}
	s.Out.Ellipsis()
	s.Out.PrintLine("")
	s.Out.Pause()
	s.Combat(ctx, amount)
}

func survivor(s *entity.Scene, amount int) {
	if amount == 0 {
		s.Out.Print("You hear a faint cry for help, but by the time you arrive")
		s.Out.Ellipsis()
		s.Out.PrintLine(" there is no one left.")
		s.Out.Wait()
		return
	}

	if amount > 1 {
		ui.Printf(s.Out, "You spot %d survivors waving at the mystery machine", amount)
	} else {
		s.Out.Print("You spot a survivor waving at the mystery machine")
	}
	s.Out.Ellipsis()
	s.Out.PrintLine("")
	s.Out.Pause()
	for i := 0; i < amount; i++ {
		m := s.Recruit(gamedata.TierWild)
		s.Party.PushFront(m)
		s.Out.PrintLine("You are joined by " + m.String())
		s.Out.Wait()
	}
}

func nothing(s *entity.Scene) {
	s.Out.Print("You search the area")
	s.Out.Ellipsis()
	s.Out.PrintLine(" but find nothing of use.")
	s.Out.Wait()
}
