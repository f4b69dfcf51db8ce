package sim

// Arena dimensions in arena units.
const (
	ArenaWidth  = 960.0
	ArenaHeight = 540.0
)

// MaxTier is the largest player size tier.
const MaxTier = 5

// MaxStep is the largest time delta a single tick will simulate.
const MaxStep = 0.05

// Radii by player tier (index tier-1).
var playerRadii = [MaxTier]float64{16, 21, 27, 34, 42}

// Radii by fish size class (index class-1).
var fishRadii = [4]float64{10, 15, 22, 30}

const (
	apexRadius   = 58.0
	hazardRadius = 14.0
)

// Unlock gates.
const (
	predatorUnlockSeconds = 8.0
	predatorUnlockScore   = 400
	hazardUnlockSeconds   = 20.0
	hazardUnlockTier      = 2
	apexUnlockSeconds     = 40.0
	apexUnlockTier        = 3
	apexUnlockScore       = 3000
)

// Size weight tables for classes 1..4.
// Rows are selected by player tier; earlyWeights applies before earlyPhaseSeconds.
const (
	earlyPhaseSeconds = 10.0
	latePhaseSeconds  = 60.0
)

var (
	earlyWeights = [4]int{3, 1, 0, 0}
	tierWeights  = [MaxTier][4]int{
		{4, 3, 1, 0},
		{3, 4, 2, 1},
		{2, 3, 4, 2},
		{1, 2, 4, 4},
		{1, 2, 4, 4},
	}
	lateBonus = [4]int{0, 0, 1, 1}
)

// Heading biases toward the arena centre for kinds without a profile aggression.
const (
	preyHeadingBias   = 0.25
	hazardHeadingBias = 0.6
)

// Speed ranges. Fish ranges grow per size class.
const (
	preyMinSpeed      = 60.0
	preyMaxSpeed      = 110.0
	preySpeedPerSize  = 10.0
	predMinSpeed      = 70.0
	predMaxSpeed      = 120.0
	predSpeedPerSize  = 12.0
	hazardMinSpeed    = 20.0
	hazardMaxSpeed    = 40.0
	apexMinSpeed      = 70.0
	apexMaxSpeed      = 95.0
	tailBiasMin       = 0.52
	tailBiasSpread    = 0.16
	apexSizeClass     = 5
	hazardBobAmp      = 18.0
	hazardBobFreq     = 1.7
)

// Steering.
const (
	fleeRadiusBase      = 90.0
	fleeRadiusPerTier   = 25.0
	fleeSpeedFactor     = 1.35
	fleeTurnRate        = 3.0
	cruiseTurnRate      = 1.5
	chaseAggressionGain = 0.5
	chaseGapGain        = 0.12
	chaseTurnRate       = 2.2
	chaseGapTurnGain    = 0.1
	apexSpeedBase       = 0.8
	apexSpeedGain       = 0.5
	apexTurnRate        = 1.6
	preyAggressionScale = 0.5
)

// Collision ellipses (x, y half-extent multipliers on the radius).
const (
	playerEllipseX = 1.25
	playerEllipseY = 0.8
	fishEllipseX   = 1.3
	fishEllipseY   = 0.75
	apexEllipseX   = 1.45
	apexEllipseY   = 0.7
	hazardEllipse  = 0.9
)

// Combat and scoring.
const (
	apexHitCooldown  = 0.45
	apexFlashSeconds = 0.18
	apexHitPoints    = 150
	apexKillFactor   = 2
	tailBandFraction = 0.5
	respawnX         = 120.0
	respawnJitter    = 80.0
	respawnCullRange = 120.0
)

var fishPoints = [4]int{90, 135, 175, 225}

// Progression.
const (
	growthStep        = 1000
	milestoneStep     = 1000
	threatDecay       = 0.98
	threatDecayRate   = 60.0
	threatFloor       = 0.001
	threatReportDelta = 0.01
)
