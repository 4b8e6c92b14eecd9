package component

// EnemyAction is the per-state payload of an enemy. Exactly one variant
// exists per EnemyState; callers switch over all four.
type EnemyAction interface {
	State() EnemyState
	isEnemyAction()
}

type PatrolAction struct {
	DirectionTimer Timer
	Speed          float64
}

type PursueAction struct {
	Speed float64
}

type LungeAttackAction struct {
	BeforeLunge Timer
	AfterLunge  Timer
	Speed       float64
}

// SpewAttackAction runs for Duration; Interval paces individual clocks.
// Angles are in degrees above the horizontal, toward the facing side.
// SourceX/SourceY is the mouth offset for left-facing art and is mirrored
// when the enemy faces right. Pending counts clocks owed while clock
// resources were unavailable.
type SpewAttackAction struct {
	Duration    Timer
	Interval    Timer
	MinVelocity float64
	MaxVelocity float64
	MinAngle    float64
	MaxAngle    float64
	SourceX     float64
	SourceY     float64
	Pending     int
}

func (*PatrolAction) State() EnemyState      { return StatePatrol }
func (*PursueAction) State() EnemyState      { return StatePursue }
func (*LungeAttackAction) State() EnemyState { return StateLungeAttack }
func (*SpewAttackAction) State() EnemyState  { return StateSpewAttack }

func (*PatrolAction) isEnemyAction()      {}
func (*PursueAction) isEnemyAction()      {}
func (*LungeAttackAction) isEnemyAction() {}
func (*SpewAttackAction) isEnemyAction()  {}
