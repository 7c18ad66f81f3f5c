package game

import "math/rand/v2"

type WeatherKind string

const (
	WeatherSunny   WeatherKind = "sunny"
	WeatherCloudy  WeatherKind = "cloudy"
	WeatherRainy   WeatherKind = "rainy"
	WeatherSnowing WeatherKind = "snowing"
)

// Weather tuning. A change roll happens every checkInterval of accumulated
// time while in normal weather; special weather runs on its own countdown.
const (
	weatherCheckInterval  = 85.0
	specialWeatherChance  = 0.4
	specialDurationMinSec = 80.0
	specialDurationMaxSec = 180.0

	rainGrowthMultiplier = 2.0
	snowGrowthMultiplier = 0.75
)

// Weather is the global weather machine. Starts sunny; flips between sunny
// and cloudy on the check interval, with a chance of a timed rainy or
// snowing spell.
type Weather struct {
	Current          WeatherKind
	timer            float64
	specialRemaining float64
	rng              *rand.Rand
}

func NewWeather(seed int64) *Weather {
	return &Weather{
		Current: WeatherSunny,
		rng:     seededRNG(seed, "weather"),
	}
}

func (w *Weather) IsSpecial() bool {
	return w.Current == WeatherRainy || w.Current == WeatherSnowing
}

func (w *Weather) Update(dt float64) {
	w.timer += dt

	if w.IsSpecial() {
		w.specialRemaining -= dt
		if w.specialRemaining <= 0 {
			w.Current = w.randomNormal()
			w.timer = 0
		}
		return
	}

	if w.timer < weatherCheckInterval {
		return
	}
	w.timer = 0

	if w.rng.Float64() < specialWeatherChance {
		if w.rng.IntN(2) == 0 {
			w.Current = WeatherRainy
		} else {
			w.Current = WeatherSnowing
		}
		w.specialRemaining = specialDurationMinSec +
			w.rng.Float64()*(specialDurationMaxSec-specialDurationMinSec)
		return
	}
	if w.Current == WeatherSunny {
		w.Current = WeatherCloudy
	} else {
		w.Current = WeatherSunny
	}
}

func (w *Weather) randomNormal() WeatherKind {
	if w.rng.IntN(2) == 0 {
		return WeatherSunny
	}
	return WeatherCloudy
}

// GrowthMultiplier is the weather's effect on growth speed.
func (w *Weather) GrowthMultiplier() float64 {
	switch w.Current {
	case WeatherRainy:
		return rainGrowthMultiplier
	case WeatherSnowing:
		return snowGrowthMultiplier
	default:
		return 1.0
	}
}

// DayNight tracks the time of day as a fraction in [0, 1): 0 is midnight,
// 0.5 is noon. Purely presentational; growth never reads it.
type DayNight struct {
	Fraction  float64
	dayLength float64
}

func NewDayNight(dayLengthSeconds float64) *DayNight {
	return &DayNight{Fraction: 0.5, dayLength: dayLengthSeconds}
}

func (d *DayNight) Update(dt float64) {
	d.Fraction += dt / d.dayLength
	for d.Fraction >= 1.0 {
		d.Fraction -= 1.0
	}
}

// Darkness is the overlay strength in [0, 0.6]: full night outside
// (0.2, 0.8), linear dawn/dusk ramps over 0.2..0.3 and 0.7..0.8.
func (d *DayNight) Darkness() float64 {
	const nightDarkness = 0.6
	t := d.Fraction
	switch {
	case t <= 0.2 || t >= 0.8:
		return nightDarkness
	case t <= 0.3:
		return nightDarkness * (1 - (t-0.2)/0.1)
	case t >= 0.7:
		return nightDarkness * (t - 0.7) / 0.1
	default:
		return 0
	}
}
