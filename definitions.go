package platform2d

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// definitionFile is the top-level YAML structure of an animation definition
// file.
type definitionFile struct {
	Animations map[string]animationDef `yaml:"animations"`
}

type animationDef struct {
	Start  float64       `yaml:"start"`
	Loop   bool          `yaml:"loop"`
	Curve  string        `yaml:"curve"`
	Points []setPointDef `yaml:"points"`
}

type setPointDef struct {
	Target float64 `yaml:"target"`
	Time   float64 `yaml:"time"`
}

// curves maps the curve names accepted in definition files to their
// implementations. Empty means smoothstep.
var curves = map[string]Curve{
	"smoothstep":   SmoothStep,
	"linear":       Linear,
	"inquad":       EaseCurve(ease.InQuad),
	"outquad":      EaseCurve(ease.OutQuad),
	"inoutquad":    EaseCurve(ease.InOutQuad),
	"incubic":      EaseCurve(ease.InCubic),
	"outcubic":     EaseCurve(ease.OutCubic),
	"inoutcubic":   EaseCurve(ease.InOutCubic),
	"insine":       EaseCurve(ease.InSine),
	"outsine":      EaseCurve(ease.OutSine),
	"inoutsine":    EaseCurve(ease.InOutSine),
	"inexpo":       EaseCurve(ease.InExpo),
	"outexpo":      EaseCurve(ease.OutExpo),
	"inoutexpo":    EaseCurve(ease.InOutExpo),
	"inback":       EaseCurve(ease.InBack),
	"outback":      EaseCurve(ease.OutBack),
	"inoutback":    EaseCurve(ease.InOutBack),
	"inbounce":     EaseCurve(ease.InBounce),
	"outbounce":    EaseCurve(ease.OutBounce),
	"inoutbounce":  EaseCurve(ease.InOutBounce),
	"inelastic":    EaseCurve(ease.InElastic),
	"outelastic":   EaseCurve(ease.OutElastic),
	"inoutelastic": EaseCurve(ease.InOutElastic),
}

// CurveByName returns the curve registered under name. Names are case
// insensitive and ignore '-' and '_' ("in-out-quad" and "InOutQuad" are the
// same curve). The empty name is smoothstep.
func CurveByName(name string) (Curve, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if key == "" {
		return SmoothStep, true
	}
	c, ok := curves[key]
	return c, ok
}

// LoadAnimations parses a YAML animation definition file and returns a
// collection holding one ValueAnimation per definition:
//
//	animations:
//	  fadeIn:
//	    start: 0
//	    curve: outquad
//	    points:
//	      - {target: 1, time: 0.5}
//	  pulse:
//	    start: 1
//	    loop: true
//	    points:
//	      - {target: 1.2, time: 0.25}
//	      - {target: 1, time: 0.25}
func LoadAnimations(data []byte) (*AnimationCollection[float64], error) {
	var file definitionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("platform2d: failed to parse animation definitions: %w", err)
	}
	if len(file.Animations) == 0 {
		log.Printf("platform2d: animation definitions contain no animations")
	}

	coll := NewAnimationCollection[float64]()
	for _, name := range slices.Sorted(maps.Keys(file.Animations)) {
		def := file.Animations[name]
		anim, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("platform2d: animation %q: %w", name, err)
		}
		if err := coll.Add(name, anim); err != nil {
			return nil, err
		}
	}
	return coll, nil
}

func (d animationDef) build() (*ValueAnimation[float64], error) {
	curve, ok := CurveByName(d.Curve)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q: %w", d.Curve, ErrInvalidArgument)
	}
	points := make([]*SetPoint[float64], 0, len(d.Points))
	for i, p := range d.Points {
		if p.Time < 0 {
			return nil, fmt.Errorf("set point %d has negative time %v: %w", i, p.Time, ErrInvalidArgument)
		}
		points = append(points, NewSetPoint(p.Target, p.Time))
	}
	anim, err := NewValueAnimation(d.Start, points)
	if err != nil {
		return nil, err
	}
	anim.IsLooping = d.Loop
	anim.Curve = curve
	return anim, nil
}
