package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	WorkoutCompletedChannel = "fittrack::workout-completed"
	RoutineChangedChannel   = "fittrack::routine-changed"
)

// Notifier carries "the user's data changed" signals between service instances
// over redis pub/sub. The message payload is the user ID.
type Notifier struct {
	redisClient *redis.Client
	localNotify func(userID uuid.UUID)
}

func NewNotifier(redisClient *redis.Client) *Notifier {
	return &Notifier{
		redisClient: redisClient,
	}
}

// WithLocalNotify makes every publish call notify first, on this instance,
// without waiting for the signal to come back over redis.
func (n *Notifier) WithLocalNotify(notify func(userID uuid.UUID)) *Notifier {
	n.localNotify = notify
	return n
}

func (n *Notifier) PublishWorkoutCompleted(ctx context.Context, userID uuid.UUID) error {
	return n.publish(ctx, WorkoutCompletedChannel, userID)
}

func (n *Notifier) PublishRoutineChanged(ctx context.Context, userID uuid.UUID) error {
	return n.publish(ctx, RoutineChangedChannel, userID)
}

func (n *Notifier) publish(ctx context.Context, channel string, userID uuid.UUID) error {
	if n.localNotify != nil {
		n.localNotify(userID)
	}
	if err := n.redisClient.Publish(ctx, channel, userID.String()).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}

// Listen calls onUpdate for every signal received until ctx is done.
func (n *Notifier) Listen(ctx context.Context, onUpdate func(userID uuid.UUID)) error {
	pubsub := n.redisClient.Subscribe(ctx, WorkoutCompletedChannel, RoutineChangedChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			log.Errorf("close dashboard subscription: %s", err)
		}
	}()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to dashboard channels: %w", err)
	}
	log.Debugf("listening on %s, %s", WorkoutCompletedChannel, RoutineChangedChannel)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return errors.New("dashboard subscription closed")
			}
			userID, err := uuid.Parse(msg.Payload)
			if err != nil {
				log.Errorf("invalid user id on %s: %q", msg.Channel, msg.Payload)
				continue
			}
			log.Tracef("%s: %s", msg.Channel, userID)
			onUpdate(userID)
		}
	}
}

type updatesListener interface {
	Listen(ctx context.Context, onUpdate func(userID uuid.UUID)) error
}

// Follow keeps listener listening until ctx is done. A failed subscription is
// retried after backoff.
func Follow(ctx context.Context, listener updatesListener, backoff time.Duration, onUpdate func(userID uuid.UUID)) {
	for {
		err := listener.Listen(ctx, onUpdate)
		if err == nil || ctx.Err() != nil {
			return
		}

		log.Errorf("dashboard updates listener: %s", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}
