package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mysterymachine/internal/telemetry"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

// Fight resolves a horde of zombies against members with ammo shells on hand.
//
// Members are shuffled once, then the tail member is always the one attacked.
// Survivors go back to the front of the line; dead and reanimated members are
// dropped. The returned slice is the surviving members in their final order.
func Fight[C Combatant](ctx context.Context, r *Resolver, members []C, ammo, zombies int) ([]C, Result) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.fight")
	defer span.End()

	band := append([]C(nil), members...)
	res := Result{Zombies: zombies}
	if zombies <= 0 {
		res.Victory = len(band) > 0
		return band, res
	}

	r.rand.Shuffle(len(band), func(i, j int) { band[i], band[j] = band[j], band[i] })

	used := min(r.rand.IntRange(0, ammo), zombies)
	r.narrateVolley(used, zombies, ammo)
	zombies -= used
	res.AmmoUsed = used
	r.out.Wait()

	for zombies > 0 && len(band) > 0 {
		m := band[len(band)-1]
		band = band[:len(band)-1]
		res.Rounds++

		attacking := r.rand.IntRange(1, zombies)
		damage := r.rand.IntRange(attacking, attacking*2)

		if attacking > 1 {
			ui.Printf(r.out, "%d zombies attack %s", attacking, m.GetName())
		} else {
			ui.Printf(r.out, "A zombie attacks %s", m.GetName())
		}
		r.out.Ellipsis()
		r.out.PrintLine("")

		m.Hurt(r.out, damage)
		r.out.Pause()

		switch m.CheckDead() {
		case Alive:
			retaliation := r.rand.IntRange(1, attacking)
			if retaliation > 1 {
				ui.Linef(r.out, "%s manages to neutralise %d of the zombies.", m.GetName(), retaliation)
			} else {
				ui.Linef(r.out, "%s manages to neutralise a zombie.", m.GetName())
			}
			zombies -= retaliation
			band = append([]C{m}, band...)
		case Dead:
			ui.Printf(r.out, "%s collapses to the ground, the zombies are", m.GetName())
			r.out.Ellipsis()
			r.out.PrintLine(" occupied.")
			r.out.Pause()
			r.out.PrintLine("For now.")
			zombies -= attacking
			res.Deaths++
		case Undead:
			ui.Printf(r.out, "A horrendous crunch is heard, and %s collapses to the ground", m.GetName())
			r.out.Ellipsis()
			ui.Linef(r.out, "\nA shriek fills the air and %s begins crawling towards the rest of the party...", m.GetName())
			zombies++
			res.Reanimated++
		}

		r.out.Pause()
		if zombies > 1 {
			ui.Linef(r.out, "There are now %d zombies left...", zombies)
		} else if zombies == 1 {
			r.out.PrintLine("1 zombie remains...")
		}
		r.out.Wait()
	}

	res.Victory = len(band) > 0
	if res.Victory {
		r.out.PrintLine("The attackers have been defeated...")
	}

	span.SetAttributes(
		attribute.Int("zombies", res.Zombies),
		attribute.Int("ammo_used", res.AmmoUsed),
		attribute.Int("rounds", res.Rounds),
		attribute.Int("deaths", res.Deaths),
		attribute.Int("reanimated", res.Reanimated),
		attribute.String("outcome", res.Outcome()),
	)
	return band, res
}

// narrateVolley describes the opening shots fired before the horde closes in.
func (r *Resolver) narrateVolley(used, zombies, ammo int) {
	switch {
	case used == zombies:
		if zombies > 1 {
			r.out.PrintLine("You quickly drew your shotgun and managed to kill all the zombies, you were lucky this time.")
		} else {
			r.out.PrintLine("You quickly drew your shotgun and managed to kill the attacking zombie, you were lucky this time.")
		}
	case used > 0:
		if used > 1 {
			ui.Linef(r.out, "You quickly drew your shotgun and managed to kill %d zombies before they could attack.", used)
		} else {
			r.out.PrintLine("You quickly drew your shotgun and managed to kill one zombie before it could attack.")
		}
		r.out.Pause()
		r.out.PrintLine("The rest lurch towards the party...")
	case ammo > 0:
		r.out.PrintLine("You had ammo to your disposal, but were not able to draw your weapons quick enough to attack the zombies...")
	}
}
