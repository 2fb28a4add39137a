package scenario

var Presets = map[string]map[string]*Config{
	"incline": {
		"gentle": {
			Scenario: "incline",
			Params:   Params{Mass: 2.0, Angle: 15, Mu: 0.3},
		},
		"steep": {
			Scenario: "incline",
			Params:   Params{Mass: 5.0, Angle: 45, Mu: 0.1},
			Steps:    StepFlags{NetForce: true},
		},
		"frictionless": {
			Scenario: "incline",
			Params:   Params{Mass: 2.0, Angle: 30, Mu: 0},
			Steps:    StepFlags{NetForce: true},
		},
	},
	"atwood": {
		"classic": {
			Scenario: "atwood",
			Params:   Params{Mass: 5.0, Mass2: 3.0},
		},
		"balanced": {
			Scenario: "atwood",
			Params:   Params{Mass: 4.0, Mass2: 4.0},
		},
	},
	"projectile": {
		"lob": {
			Scenario: "projectile",
			Params:   Params{Mass: 0.5, Speed: 15, Angle: 60},
		},
		"flat": {
			Scenario: "projectile",
			Params:   Params{Mass: 0.5, Speed: 30, Angle: 20},
		},
	},
	"circular": {
		"swing": {
			Scenario: "circular",
			Params:   Params{Mass: 1.0, Speed: 4, Radius: 1.5},
		},
	},
	"collision": {
		"elastic": {
			Scenario: "collision",
			Params:   Params{Mass: 2.0, Mass2: 2.0, Velocity1: 5, Velocity2: -5, Restitution: 1},
		},
		"sticky": {
			Scenario: "collision",
			Params:   Params{Mass: 3.0, Mass2: 1.0, Velocity1: 4, Velocity2: 0, Restitution: 0},
		},
	},
	"free_body": {
		"push": {
			Scenario: "free_body",
			Params:   Params{Mass: 10.0, Applied: 40, Mu: 0.25},
			Steps:    StepFlags{NetForce: true},
		},
		"rest": {
			Scenario: "free_body",
			Params:   Params{Mass: 10.0},
		},
	},
}

func GetPreset(scenarioName, preset string) *Config {
	group, ok := Presets[scenarioName]
	if !ok {
		return nil
	}
	return group[preset]
}

func ListPresets(scenarioName string) []string {
	group, ok := Presets[scenarioName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
