package timer

import (
	"context"
	e "eventcal/internal/core/domain/errors"
	"eventcal/internal/core/domain/logging"
	"eventcal/internal/core/domain/trigger"
	"strconv"
	"time"

	"github.com/go-redis/redis/v9"
)

const (
	pendingKey = "trigger:pending"
	payloadKey = "trigger:payload"
)

// drainScript removes and returns due triggers in a single atomic step, so
// an arm landing while a drain is in flight either moves the member out of
// the drained score range or is returned by the drain, never deleted unseen.
var drainScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'WITHSCORES', 'LIMIT', 0, ARGV[2])
local result = {}
for i = 1, #due, 2 do
    local member = due[i]
    local payload = redis.call('HGET', KEYS[2], member)
    redis.call('ZREM', KEYS[1], member)
    redis.call('HDEL', KEYS[2], member)
    result[#result + 1] = member
    result[#result + 1] = due[i + 1]
    result[#result + 1] = payload or ''
end
return result
`)

// restoreScript puts a consumed trigger back only when nothing newer was
// armed under the same key in the meantime (ZADD NX).
var restoreScript = redis.NewScript(`
if redis.call('ZADD', KEYS[1], 'NX', ARGV[1], ARGV[2]) == 1 then
    redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
end
return 0
`)

// Redis keeps pending triggers in a sorted set scored by fire time, with
// payloads in a companion hash. ZADD updates the score of an existing member,
// which is exactly the replace-if-exists contract of Arm: at most one pending
// trigger per key, last arm wins. Redis persistence makes the armed state
// survive process restarts.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
}

func NewRedis(redisClient *redis.Client, log logging.Logger) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log}
}

func (r *Redis) Arm(ctx context.Context, t trigger.Trigger) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, pendingKey, redis.Z{
			Score:  float64(t.FireAt.UnixMilli()),
			Member: string(t.Key),
		})
		pipe.HSet(ctx, payloadKey, string(t.Key), t.Payload)
		return nil
	})
	if err != nil {
		logging.Error(ctx, r.log, err, logging.Entry("trigger", t))
		return err
	}
	r.log.Info(
		ctx,
		"Trigger armed.",
		logging.Entry("key", t.Key),
		logging.Entry("fireAt", t.FireAt),
	)
	return nil
}

// ArmIfAbsent restores a trigger after a failed dispatch. A trigger armed
// under the same key since the drain wins, the restored one is dropped.
func (r *Redis) ArmIfAbsent(ctx context.Context, t trigger.Trigger) error {
	err := restoreScript.Run(
		ctx,
		r.redisClient,
		[]string{pendingKey, payloadKey},
		strconv.FormatInt(t.FireAt.UnixMilli(), 10),
		string(t.Key),
		t.Payload,
	).Err()
	if err != nil {
		logging.Error(ctx, r.log, err, logging.Entry("trigger", t))
		return err
	}
	return nil
}

func (r *Redis) Cancel(ctx context.Context, key trigger.Key) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, pendingKey, string(key))
		pipe.HDel(ctx, payloadKey, string(key))
		return nil
	})
	if err != nil {
		logging.Error(ctx, r.log, err, logging.Entry("key", key))
		return err
	}
	return nil
}

// Due consumes and returns up to limit triggers whose fire time is not after
// now. Consumed triggers are removed, a trigger fires at most once per arm.
func (r *Redis) Due(ctx context.Context, now time.Time, limit uint) ([]trigger.Trigger, error) {
	raw, err := drainScript.Run(
		ctx,
		r.redisClient,
		[]string{pendingKey, payloadKey},
		strconv.FormatInt(now.UnixMilli(), 10),
		limit,
	).Slice()
	if err != nil {
		logging.Error(ctx, r.log, err)
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	triggers := make([]trigger.Trigger, 0, len(raw)/3)
	for ix := 0; ix+2 < len(raw); ix += 3 {
		member, _ := raw[ix].(string)
		scoreRaw, _ := raw[ix+1].(string)
		payload, _ := raw[ix+2].(string)
		score, err := strconv.ParseFloat(scoreRaw, 64)
		if err != nil {
			logging.Error(ctx, r.log, err, logging.Entry("member", member), logging.Entry("score", scoreRaw))
			return nil, err
		}
		triggers = append(triggers, trigger.Trigger{
			Key:     trigger.Key(member),
			FireAt:  time.UnixMilli(int64(score)),
			Payload: payload,
		})
	}
	return triggers, nil
}
