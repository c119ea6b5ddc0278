// Package partyland implements table 1: a carnival table built around the
// party counter. Cyclone ramp laps feed the counter; milestones light the
// duck targets, open the Crazy mode window, and finally award an extra ball.
package partyland

import (
	"github.com/arcadeworks/tui-pinball/internal/core"
	"github.com/arcadeworks/tui-pinball/internal/pin"
)

// Trigger identities. Declaration order in the layout is evaluation priority.
const (
	TrigOutLeft pin.TriggerID = iota
	TrigInLeft
	TrigInRight
	TrigOutRight
	TrigCycloneEntry
	TrigCycloneExit
	TrigTunnel
	TrigBumperA
	TrigBumperB
	TrigBumperC
	TrigDuckA
	TrigDuckB
	TrigDuckC
	TrigPuke
)

// Light identities.
const (
	LightLaneOutLeft pin.LightID = iota
	LightLaneInLeft
	LightLaneInRight
	LightLaneOutRight
	LightDuckA
	LightDuckB
	LightDuckC
	LightParty25
	LightParty50
	LightParty75
	LightParty100
	LightCrazy
	LightExtraBall

	numLights
)

// Collision layers.
const (
	layerGround pin.Layer = iota
	layerCyclone
)

// Music positions consumed by the audio backend. Negative means silence.
const (
	songSilence     = -1
	songAttract     = 0
	songMain        = 1
	songPlunger     = 2
	jingleGameStart = 3
	jingleTilt      = 4
	jingleWarn      = 5
	jingleHighScore = 6
	jingleMatch     = 7
	jingleGameOver  = 8
	jingleCrazy     = 9
	jingleExtraBall = 10
)

// NewLayout builds the static table description.
func NewLayout() *pin.Layout {
	ground := pin.NewPhysMap()
	wall := pin.SolidCell(1)
	rubber := pin.SolidCell(2)

	// Spring lane wall on the right, open at the top.
	ground.FillRect(core.NewRect(278, 90, 4, 486), wall)
	// Funnel walls down to the flippers.
	ground.FillLine(1, 430, 104, 498, 3, wall)
	ground.FillLine(277, 430, 216, 498, 3, wall)
	// Outlane posts.
	ground.FillRect(core.NewRect(40, 400, 4, 60), rubber)
	ground.FillRect(core.NewRect(238, 400, 4, 60), rubber)
	// Bumper caps (round rubber islands up top).
	ground.FillCircle(80, 150, 9, rubber)
	ground.FillCircle(140, 120, 9, rubber)
	ground.FillCircle(200, 150, 9, rubber)
	// Duck target faces along the upper-left wall.
	ground.FillRect(core.NewRect(20, 220, 5, 14), rubber)
	ground.FillRect(core.NewRect(20, 244, 5, 14), rubber)
	ground.FillRect(core.NewRect(20, 268, 5, 14), rubber)
	// Cyclone ramp mouth: transition to the ramp layer.
	ground.FillRect(core.NewRect(230, 250, 20, 8), pin.TransitionCell(layerCyclone))

	cyclone := pin.NewPhysMap()
	// A walled channel curling over the top of the table.
	cyclone.FillLine(250, 250, 250, 80, 3, wall)
	cyclone.FillLine(222, 258, 222, 100, 3, wall)
	cyclone.FillLine(250, 80, 60, 60, 3, wall)
	cyclone.FillLine(222, 100, 80, 84, 3, wall)
	// Drop back to the ground layer on the left.
	cyclone.FillRect(core.NewRect(62, 64, 16, 18), pin.TransitionCell(layerGround))

	l := &pin.Layout{
		Table:     pin.Table1,
		Name:      "PARTYLAND",
		Layers:    []pin.PhysMap{ground, cyclone},
		LayerDamp: []int{250, 247},
		Flippers: []pin.FlipperDef{
			{Side: pin.SideLeft, Rect: core.NewRect(108, 502, 42, 6), Quanta: 10},
			{Side: pin.SideRight, Rect: core.NewRect(170, 502, 42, 6), Quanta: 10},
		},
		RollZones: []pin.RollZone{
			{ID: TrigOutLeft, Layer: layerGround, Rect: core.NewRect(10, 440, 28, 40)},
			{ID: TrigInLeft, Layer: layerGround, Rect: core.NewRect(60, 440, 28, 40)},
			{ID: TrigInRight, Layer: layerGround, Rect: core.NewRect(190, 440, 28, 40)},
			{ID: TrigOutRight, Layer: layerGround, Rect: core.NewRect(240, 440, 28, 40)},
			{ID: TrigCycloneEntry, Layer: layerGround, Rect: core.NewRect(226, 240, 28, 18)},
			{ID: TrigCycloneExit, Layer: layerCyclone, Rect: core.NewRect(58, 60, 26, 26)},
			{ID: TrigTunnel, Layer: layerGround, Rect: core.NewRect(10, 330, 24, 30)},
		},
		HitZones: []pin.HitZone{
			{ID: TrigDuckA, Layer: layerGround, Rect: core.NewRect(16, 214, 14, 24)},
			{ID: TrigDuckB, Layer: layerGround, Rect: core.NewRect(16, 238, 14, 24)},
			{ID: TrigDuckC, Layer: layerGround, Rect: core.NewRect(16, 262, 14, 24)},
		},
		Bumpers: []pin.Bumper{
			{ID: TrigBumperA, Layer: layerGround, X: 80, Y: 150, R: 12},
			{ID: TrigBumperB, Layer: layerGround, X: 140, Y: 120, R: 12},
			{ID: TrigBumperC, Layer: layerGround, X: 200, Y: 150, R: 12},
			{ID: TrigPuke, Layer: layerGround, X: 50, Y: 360, R: 14, Kicker: true},
		},
		Lights: partyLights(),

		Scripts: partyScripts(),
		Jingles: map[pin.JingleBind]pin.Jingle{
			pin.JingleAttract:   {Position: songAttract, Loop: true},
			pin.JingleSilence:   {Position: songSilence, Loop: true},
			pin.JingleMain:      {Position: songMain, Loop: true},
			pin.JinglePlunger:   {Position: songPlunger, Loop: true},
			pin.JingleGameStart: {Position: jingleGameStart},
			pin.JingleTilt:      {Position: jingleTilt},
			pin.JingleWarnTilt:  {Position: jingleWarn},
			pin.JingleHighScore: {Position: jingleHighScore},
			pin.JingleMatch:     {Position: jingleMatch},
			pin.JingleGameOver:  {Position: jingleGameOver},
			jingleBindCrazy:     {Position: jingleCrazy},
			jingleBindExtra:     {Position: jingleExtraBall},
		},

		BallStartX: 298,
		BallStartY: 525,
		SpringRect: core.NewRect(282, 470, 36, 90),
		DrainRect:  core.NewRect(138, 548, 44, 24),

		KickerSpeedThreshold: 260,
		KickerSpeedBoost:     1000,
		BumperSpeedBoost:     620,
	}
	l.Materials[1] = pin.Material{Bounce: 170}
	l.Materials[2] = pin.Material{Bounce: 215}
	return l
}

func partyLights() []pin.LightDef {
	return []pin.LightDef{
		{X: 24, Y: 470},  // LightLaneOutLeft
		{X: 74, Y: 470},  // LightLaneInLeft
		{X: 204, Y: 470}, // LightLaneInRight
		{X: 254, Y: 470}, // LightLaneOutRight
		{X: 34, Y: 226},  // LightDuckA
		{X: 34, Y: 250},  // LightDuckB
		{X: 34, Y: 274},  // LightDuckC
		{X: 120, Y: 300}, // LightParty25
		{X: 140, Y: 300}, // LightParty50
		{X: 160, Y: 300}, // LightParty75
		{X: 180, Y: 300}, // LightParty100
		{X: 150, Y: 330}, // LightCrazy
		{X: 150, Y: 360}, // LightExtraBall
	}
}

// Table-specific script binds.
const (
	scriptBindCrazy pin.ScriptBind = pin.BindTableBase + iota
	scriptBindDucks
	scriptBindExtraBall
)

// Table-specific jingle binds.
const (
	jingleBindCrazy pin.JingleBind = pin.JingleTableBase + iota
	jingleBindExtra
)

func partyScripts() map[pin.ScriptBind]pin.Script {
	return map[pin.ScriptBind]pin.Script{
		pin.BindInit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 26, Y: 1, Text: "PARTYLAND"},
			}},
			{Delay: 90, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink, On: true}}},
			{Delay: 180, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		pin.BindGameStart: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 22, Y: 1, Text: "LET THE PARTY"},
			}},
			{Delay: 60, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 46, Y: 1, Text: "BEGIN!"},
			}},
		},
		pin.BindGameStartPlayers: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 16, Y: 1, Text: "PLAYERS JOINED"},
			}},
		},
		pin.BindTilt: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 56, Y: 1, Text: "TILT"},
				{Kind: pin.OpDmBlink, On: true},
			}},
		},
		pin.BindConfirmQuit: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH7, X: 0, Y: 4, Text: "REALLY QUIT (Y OR N)"},
			}},
		},
		pin.BindDrained: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 28, Y: 1, Text: "PARTY OVER"},
			}},
		},
		pin.BindGameOver: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 28, Y: 1, Text: "GAME OVER"},
				{Kind: pin.OpLightsOff},
			}},
		},
		pin.BindHighScore: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmBlink, On: true},
			}},
			{Delay: 30, Ops: []pin.ScriptOp{{Kind: pin.OpDmBlink}}},
		},
		scriptBindCrazy: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 14, Y: 1, Text: "CRAZY LETTERS"},
				{Kind: pin.OpLightBlink, Light: LightCrazy, Period: 8},
				{Kind: pin.OpJingle, Jingle: jingleBindCrazy},
			}},
		},
		scriptBindDucks: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 20, Y: 1, Text: "DUCKS BAGGED"},
				{Kind: pin.OpSfx, Sfx: pin.SfxTarget},
			}},
		},
		scriptBindExtraBall: {
			{Delay: 1, Ops: []pin.ScriptOp{
				{Kind: pin.OpDmClear},
				{Kind: pin.OpDmText, Font: pin.FontH13, X: 20, Y: 1, Text: "EXTRA BALL"},
				{Kind: pin.OpLight, Light: LightExtraBall, On: true},
				{Kind: pin.OpJingle, Jingle: jingleBindExtra},
			}},
		},
	}
}
