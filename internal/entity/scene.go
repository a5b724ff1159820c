package entity

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mysterymachine/internal/combat"
	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

// Scene bundles the party with the collaborators that interactive
// operations need: the name pool for rescues, the presenter and the
// random source.
type Scene struct {
	Party *Party
	Names *NamePool
	Out   ui.Presenter
	Rand  rng.Source
}

// Combat fights a horde of zombies. Ammo is spent and fallen members are
// removed from the party.
func (s *Scene) Combat(ctx context.Context, zombies int) combat.Result {
	log := logger.Log.WithFields(logrus.Fields{
		"zombies": zombies,
		"members": len(s.Party.Members),
		"ammo":    s.Party.Ammo,
	})
	log.Debug("Combat started")

	r := combat.NewResolver(s.Rand, s.Out)
	members, res := combat.Fight(ctx, r, s.Party.Members, s.Party.Ammo, zombies)
	s.Party.Members = members
	s.Party.Ammo -= res.AmmoUsed

	log.WithFields(logrus.Fields{
		"outcome":    res.Outcome(),
		"ammo_used":  res.AmmoUsed,
		"deaths":     res.Deaths,
		"reanimated": res.Reanimated,
	}).Info("Combat finished")
	return res
}

// Recruit creates a survivor of the given tier with a name from the pool.
// The caller decides where the survivor joins the line.
func (s *Scene) Recruit(tier string) *Member {
	m := NewSurvivor(s.Names.Take(s.Rand), tier, s.Rand)
	logger.Log.WithFields(logrus.Fields{
		"name": m.Name,
		"tier": tier,
	}).Debug("Survivor recruited")
	return m
}

// InfectionTick applies the infection toll to each member once, in line
// order. The dead are dropped; the reanimated are dropped and then fought
// as a horde.
func (s *Scene) InfectionTick(ctx context.Context) {
	snapshot := append([]*Member(nil), s.Party.Members...)
	survivors := make([]*Member, 0, len(snapshot))
	zombies := 0

	for _, m := range snapshot {
		switch m.CheckInfection(s.Out) {
		case combat.Alive:
			survivors = append(survivors, m)
		case combat.Dead:
			ui.Printf(s.Out, "%s collapses on the ground, unmoving", m.Name)
			s.Out.Ellipsis()
			s.Out.PrintLine("")
		case combat.Undead:
			zombies++
			ui.Printf(s.Out, "%s falls on the ground, and continues coughing", m.Name)
			s.Out.Ellipsis()
			s.Out.PrintLine("")
		}
	}
	s.Party.Members = survivors

	if zombies == 0 {
		return
	}
	if zombies > 1 {
		ui.Linef(s.Out, "Suddenly, the %d corpses leap from the ground and attack the rest of the party!", zombies)
	} else {
		s.Out.PrintLine("Suddenly, the corpse leaps from the ground and attacks the rest of the party!")
	}
	s.Out.Pause()
	s.Combat(ctx, zombies)
}

// Feed runs the feeding menu until the player backs out.
func (s *Scene) Feed() {
	s.supplyMenu(supply{
		noun:   "food",
		prompt: "Enter a number to feed a party member, or 'back' to exit this menu.",
		stock:  &s.Party.Food,
		apply: func(m *Member) {
			ui.Printf(s.Out, "%s begins eating", m.Name)
			s.Out.Ellipsis()
			s.Out.PrintLine("\nThey feel slightly better now.")
			m.Heal(s.Rand.IntRange(2, 4))
		},
		lacking: "You do not have enough food for %s to eat...",
	})
}

// Cure runs the medicine menu until the player backs out.
func (s *Scene) Cure() {
	s.supplyMenu(supply{
		noun:   "medicine",
		prompt: "Enter a number to attempt to cure a party member, or 'back' to exit this menu.",
		stock:  &s.Party.Medicine,
		apply: func(m *Member) {
			ui.Printf(s.Out, "%s takes some of the antibiotics", m.Name)
			s.Out.Ellipsis()
			s.Out.PrintLine("\nThey feel slightly better now.")
			m.Cure(s.Rand.IntRange(5, 10))
		},
		lacking: "You do not have enough medicine for %s to use...",
	})
}

// ShowMembers lists every member's vitals.
func (s *Scene) ShowMembers() {
	s.Out.Clear()
	for _, m := range s.Party.Members {
		s.Out.PrintLine(m.String() + "\n")
	}
	s.Out.Wait()
}

type supply struct {
	noun    string
	prompt  string
	stock   *int
	apply   func(m *Member)
	lacking string // format taking the member name
}

func (s *Scene) supplyMenu(sup supply) {
	for {
		s.Out.Clear()
		s.Out.PrintLine(ui.MemberTable(s.Party.MemberRows()))
		ui.Linef(s.Out, "You have %d %s.", *sup.stock, sup.noun)

		for {
			i, ok := ui.AskIndex(s.Out, sup.prompt, len(s.Party.Members))
			if !ok {
				return
			}
			m := s.Party.Members[i]
			if *sup.stock < 1 {
				ui.Linef(s.Out, sup.lacking, m.Name)
				continue
			}
			sup.apply(m)
			*sup.stock--
			logger.Log.WithFields(logrus.Fields{
				"member": m.Name,
				"supply": sup.noun,
				"left":   *sup.stock,
			}).Debug("Supply used")
			s.Out.Wait()
			break
		}
	}
}
