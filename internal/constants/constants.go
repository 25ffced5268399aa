package constants

import "time"

// how long to wait after the last attribute change before committing a merged
// update to the bulb
const CoalesceWindow = 5 * time.Millisecond

// how long to wait before re-attempting a commit that found a write in flight
const CommitRecheckInterval = 100 * time.Millisecond

// bulbs report stale state if queried straight after a write
const ReadbackSettleDelay = 500 * time.Millisecond
const ReadbackAttempts = 5

const StateReadTimeout = 1000 * time.Millisecond
const CommandWriteTimeout = 200 * time.Millisecond

// TCP port the bulbs listen on
const DevicePort = 5577

const ScheduleUpdateInterval = time.Minute

const MirekWarmest = 500
const MirekCoolest = 153
