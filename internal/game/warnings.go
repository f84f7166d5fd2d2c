package game

// Severity ranks a status warning.
type Severity int

const (
	SeverityNotice Severity = iota + 1
	SeveritySerious
	SeverityCritical
)

// Warning is a derived status alert.
type Warning struct {
	Resource string
	Severity Severity
	Text     string
}

type warningBand struct {
	resource string
	// rising is true when higher values are worse.
	rising bool
	limits [3]float64 // critical, serious, notice
	texts  [3]string
}

var warningBands = []warningBand{
	{"health", false, [3]float64{10, 25, 50}, [3]string{
		"You are critically injured and near death!",
		"You are badly injured!",
		"You have some injuries that need attention.",
	}},
	{"hunger", false, [3]float64{5, 20, 40}, [3]string{
		"You are starving to death!",
		"You are very hungry!",
		"You could use some food.",
	}},
	{"thirst", false, [3]float64{5, 20, 40}, [3]string{
		"You are dying of thirst!",
		"You are very thirsty!",
		"You could use some water.",
	}},
	{"fatigue", true, [3]float64{90, 80, 60}, [3]string{
		"You are about to collapse from exhaustion!",
		"You are exhausted!",
		"You are getting tired.",
	}},
	{"fuel", false, [3]float64{5, 20, 40}, [3]string{
		"Your vehicle is almost out of fuel!",
		"Your vehicle is low on fuel!",
		"You should look for fuel soon.",
	}},
}

func (v Vitals) value(resource string) float64 {
	switch resource {
	case "health":
		return v.Health
	case "hunger":
		return v.Hunger
	case "thirst":
		return v.Thirst
	case "fatigue":
		return v.Fatigue
	default:
		return v.Fuel
	}
}

// Warnings lists at most one warning per resource, worst band first.
func (v Vitals) Warnings() []Warning {
	var out []Warning
	for _, b := range warningBands {
		val := v.value(b.resource)
		for i, limit := range b.limits {
			hit := val <= limit
			if b.rising {
				hit = val >= limit
			}
			if hit {
				out = append(out, Warning{
					Resource: b.resource,
					Severity: SeverityCritical - Severity(i),
					Text:     b.texts[i],
				})
				break
			}
		}
	}
	return out
}
