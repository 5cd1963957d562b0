package main

import (
	"github.com/lixenwraith/mirrorvis/config"
	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/surface"
)

// Scenario is one fixed walkthrough configuration: a scene, a
// player/cursor pair, and an optional plan of surfaces to bounce off
// in order. PlayerAlt, when set, is a second player position evaluated
// against the same scene/cursor/plan — used by the tie-break scenario
// to show two near-coincident queries resolving the same way.
type Scenario struct {
	Name        string
	Description string
	Scene       *surface.Scene
	Player      geom.Point
	PlayerAlt   *geom.Point
	Cursor      geom.Point
	Planned     []surface.Surface
}

// buildScenarios assembles the worked walkthroughs. Scenarios 4-6 use
// illustrative coordinates in the spirit of the pyramid/junction/
// tie-break configurations rather than reproducing one literal layout,
// since a demo only needs a plausible instance of each shape.
func buildScenarios() ([]Scenario, error) {
	var out []Scenario

	empty, err := surface.NewScene(nil)
	if err != nil {
		return nil, err
	}
	out = append(out, Scenario{
		Name:        "direct line of sight",
		Description: "empty scene, cursor directly ahead, no plan",
		Scene:       empty,
		Player:      geom.Point{X: 100, Y: 300},
		Cursor:      geom.Point{X: 500, Y: 300},
	})

	h1, err := surface.NewChain("h1", []geom.Point{{X: 540, Y: 300}, {X: 740, Y: 300}},
		[]surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		return nil, err
	}
	wall1, err := surface.NewChain("wall1", []geom.Point{{X: 300, Y: 450}, {X: 500, Y: 450}},
		[]surface.Reflectivity{surface.Wall}, false)
	if err != nil {
		return nil, err
	}
	wallScene, err := surface.NewScene([]*surface.Chain{h1, wall1})
	if err != nil {
		return nil, err
	}
	out = append(out, Scenario{
		Name:        "wall obstacle divergence",
		Description: "plan calls for h1 but a physical wall intercepts first",
		Scene:       wallScene,
		Player:      geom.Point{X: 345, Y: 515},
		Cursor:      geom.Point{X: 581, Y: 329},
		Planned:     h1.Surfaces(),
	})

	vmNear, err := surface.NewChain("vm-near", []geom.Point{{X: 300, Y: 100}, {X: 300, Y: 500}},
		[]surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		return nil, err
	}
	vmFar, err := surface.NewChain("vm-far", []geom.Point{{X: 600, Y: 100}, {X: 600, Y: 500}},
		[]surface.Reflectivity{surface.Mirror}, false)
	if err != nil {
		return nil, err
	}
	parallelScene, err := surface.NewScene([]*surface.Chain{vmNear, vmFar})
	if err != nil {
		return nil, err
	}
	out = append(out, Scenario{
		Name:        "parallel mirrors, no plan",
		Description: "two parallel vertical mirrors, the nearer one across the direct line of sight",
		Scene:       parallelScene,
		Player:      geom.Point{X: 345, Y: 205},
		Cursor:      geom.Point{X: 109, Y: 205},
	})

	pyramid, err := surface.NewChain("pyramid", []geom.Point{
		{X: 500, Y: 600}, {X: 900, Y: 600}, {X: 700, Y: 250},
	}, []surface.Reflectivity{surface.Mirror, surface.Mirror, surface.Mirror}, true)
	if err != nil {
		return nil, err
	}
	pyramidScene, err := surface.NewScene([]*surface.Chain{pyramid})
	if err != nil {
		return nil, err
	}
	out = append(out, Scenario{
		Name:        "pyramid chain, three planned bounces",
		Description: "closed triangular mirror chain, a three-surface plan around its faces",
		Scene:       pyramidScene,
		Player:      geom.Point{X: 345, Y: 143},
		Cursor:      geom.Point{X: 1053, Y: 81},
		Planned:     pyramid.Surfaces(),
	})

	chain2, err := surface.NewChain("chain2", []geom.Point{
		{X: 650, Y: 400}, {X: 750, Y: 250}, {X: 850, Y: 400},
	}, []surface.Reflectivity{surface.Mirror, surface.Mirror}, false)
	if err != nil {
		return nil, err
	}
	junctionScene, err := surface.NewScene([]*surface.Chain{chain2})
	if err != nil {
		return nil, err
	}
	chain2Surfaces := chain2.Surfaces()
	out = append(out, Scenario{
		Name:        "V-chain junction",
		Description: "two mirrors sharing a junction vertex, plan crosses it in reverse edge order",
		Scene:       junctionScene,
		Player:      geom.Point{X: 776.44, Y: 392.19},
		Cursor:      geom.Point{X: 600, Y: 520},
		Planned:     []surface.Surface{chain2Surfaces[1], chain2Surfaces[0]},
	})

	bounds, edges := config.StandardScenario()
	room, err := config.BuildBoundaryChain("room", bounds, edges)
	if err != nil {
		return nil, err
	}
	roomScene, err := surface.NewScene([]*surface.Chain{room})
	if err != nil {
		return nil, err
	}
	altPlayer := geom.Point{X: 224.393, Y: 659.208}
	out = append(out, Scenario{
		Name:        "near-duplicate player, sort stability",
		Description: "two players 0.05 units apart against the standard room, same cursor",
		Scene:       roomScene,
		Player:      geom.Point{X: 224.443, Y: 659.208},
		PlayerAlt:   &altPlayer,
		Cursor:      geom.Point{X: 640, Y: 400},
	})

	return out, nil
}
