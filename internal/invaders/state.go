package invaders

// State is one immutable snapshot of the world.
//
// Transitions never modify a State in place: every slice in a returned State
// is either shared unchanged with its predecessor or freshly allocated.
type State struct {
	Time int // Tick counter, held while GameOverPending

	Ship           Entity
	Shields        []Entity
	ShipBullets    []Entity
	InvaderBullets []Entity
	BossBullets    []Entity
	Invaders       []Entity
	Boss           []Entity

	// Exited holds the entities removed by this transition. The render layer
	// deletes their visuals; they are never present in a live collection.
	Exited []Entity

	SpawnCounter    int  // Next numeric id for a fired bullet
	GameOver        bool // Terminal: the player ended the game
	BossStageActive bool
	Restarting      bool // True only on the transition that performed a restart
	RestartTime     int  // Phase anchor for the patrol, set on restart
	GameOverPending bool // Round lost or won; world frozen until Restart
}

// Live returns every live entity in render order: ship, shields, invaders,
// boss, then bullets.
func (s State) Live() []Entity {
	out := make([]Entity, 0, 1+len(s.Shields)+len(s.Invaders)+len(s.Boss)+
		len(s.ShipBullets)+len(s.InvaderBullets)+len(s.BossBullets))
	out = append(out, s.Ship)
	out = append(out, s.Shields...)
	out = append(out, s.Invaders...)
	out = append(out, s.Boss...)
	out = append(out, s.ShipBullets...)
	out = append(out, s.InvaderBullets...)
	return append(out, s.BossBullets...)
}
