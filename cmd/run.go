// File: cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openrover/btnav/api/schemas"
	"github.com/openrover/btnav/internal/bt"
	"github.com/openrover/btnav/internal/journal"
	"github.com/openrover/btnav/internal/mission"
	"github.com/openrover/btnav/internal/nav"
	"github.com/openrover/btnav/internal/navsim"
	"github.com/openrover/btnav/internal/observability"
	"github.com/openrover/btnav/internal/percept"
	"github.com/openrover/btnav/internal/routedoc"
	"github.com/openrover/btnav/internal/tf"
)

func newRunCommand() *cobra.Command {
	var (
		missionPath  string
		scenarioPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a mission against the built-in navigation simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMission(cmd.Context(), missionPath, scenarioPath)
		},
	}

	cmd.Flags().StringVarP(&missionPath, "mission", "m", "", "mission file (YAML)")
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "detection scenario file (JSON, optional)")
	_ = cmd.MarkFlagRequired("mission")
	return cmd
}

func runMission(ctx context.Context, missionPath, scenarioPath string) error {
	cfg := appConfig
	logger := observability.GetLogger()

	m, err := mission.Load(missionPath)
	if err != nil {
		return err
	}
	logger.Info("mission loaded",
		zap.String("mission", m.Name),
		zap.Int("legs", len(m.Legs)))

	// Transform tree, seeded with the mission's named reference frames.
	buffer := tf.NewBuffer()
	for _, f := range m.Frames {
		buffer.Set(schemas.TransformStamped{
			ParentFrame: cfg.Nav.GlobalFrame,
			ChildFrame:  f.Frame,
			Transform: schemas.Transform{
				Translation: schemas.Vec3{X: f.X, Y: f.Y},
				Rotation:    schemas.IdentityQuaternion(),
			},
		})
	}

	sim := navsim.NewServer(navsim.Config{
		SpeedMPS:      cfg.Sim.SpeedMPS,
		ResultLatency: cfg.Sim.ResultLatency,
		ReadyAfter:    cfg.Sim.ReadyAfter,
	}, logger)
	defer sim.Close()

	generator, err := routedoc.NewGenerator(cfg.RouteDoc.OutputDir, logger)
	if err != nil {
		return err
	}

	resolver := nav.NewCoordinateResolver(buffer, cfg.Nav.GlobalFrame, logger)
	builder := nav.NewGoalBuilder(resolver, generator, logger)

	var recorder nav.Recorder
	if cfg.Journal.Enabled {
		pool, err := pgxpool.New(ctx, cfg.Journal.DSN)
		if err != nil {
			return fmt.Errorf("connecting goal journal: %w", err)
		}
		defer pool.Close()

		j, err := journal.New(ctx, pool, logger)
		if err != nil {
			return err
		}
		if err := j.EnsureSchema(ctx); err != nil {
			return err
		}
		recorder = j
	}

	supervisor := nav.NewGoalSupervisor(sim, builder, recorder, nav.SupervisorConfig{
		ServiceWaitTimeout: cfg.Nav.ServiceWaitTimeout,
	}, logger)

	bb := bt.NewBlackboard()
	navNode := nav.NewNavigateTo(bb, supervisor, logger)
	store := percept.NewStore(buffer, logger)

	g, gctx := errgroup.WithContext(ctx)

	if scenarioPath != "" {
		frames, err := percept.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return replayScenario(gctx, store, frames)
		})
	}

	g.Go(func() error {
		if err := driveMission(gctx, cfg.Nav.TickRateHz, m, bb, navNode, supervisor, logger); err != nil {
			return err
		}
		return runSearch(gctx, cfg.Percept.AngularToleranceDeg, m, bb, store, logger)
	})

	return g.Wait()
}

// driveMission ticks the NavigateTo node through the leg chain. The next
// leg's parameters are staged on the blackboard as soon as a goal is in
// flight, so the supervisor's post-terminal recomputation picks them up.
func driveMission(ctx context.Context, tickRateHz float64, m *mission.Mission, bb *bt.Blackboard, node *nav.NavigateTo, supervisor *nav.GoalSupervisor, logger *zap.Logger) error {
	legIdx := 0
	m.Legs[0].ApplyTo(bb)
	lastGoal := uuid.Nil

	driver := bt.NodeFunc{
		NodeName: "MissionNavigate",
		Fn: func(ctx context.Context) bt.Status {
			status := node.Tick(ctx)

			if goal := supervisor.LastGoal(); goal.ID != lastGoal && supervisor.State() == nav.StateActive {
				lastGoal = goal.ID
				if legIdx+1 < len(m.Legs) {
					legIdx++
					m.Legs[legIdx].ApplyTo(bb)
					logger.Info("staged next mission leg",
						zap.Int("leg", legIdx),
						zap.String("name", m.Legs[legIdx].Name))
				}
			}
			return status
		},
	}

	ticker := bt.NewTicker(tickRateHz, logger)
	status, err := ticker.Run(ctx, driver)
	if err != nil {
		return err
	}
	logger.Info("mission navigation finished", zap.Stringer("status", status))
	if status != bt.StatusSuccess {
		return fmt.Errorf("mission navigation ended with %s", status)
	}
	return nil
}

// runSearch evaluates the mission's search phase once navigation completed.
func runSearch(ctx context.Context, toleranceDeg float64, m *mission.Mission, bb *bt.Blackboard, store *percept.Store, logger *zap.Logger) error {
	if m.Search == nil {
		return nil
	}

	node := percept.NewIsInFront(bb, store, store, percept.IsInFrontConfig{
		Target:              m.Search.Target,
		Confidence:          m.Search.Confidence,
		What:                m.Search.What,
		EntityID:            m.Search.EntityToIdentify,
		AngularToleranceDeg: toleranceDeg,
	}, logger)

	status := node.Tick(ctx)
	direction, _ := bb.GetInt(percept.PortDirection)
	logger.Info("search phase evaluated",
		zap.Stringer("status", status),
		zap.Int("direction", direction))
	return nil
}

// replayScenario feeds timed detection frames into the perception store.
func replayScenario(ctx context.Context, store *percept.Store, frames []percept.Frame) error {
	start := time.Now()
	for _, frame := range frames {
		due := start.Add(time.Duration(frame.OffsetMS) * time.Millisecond)
		wait := time.Until(due)
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		store.SetDetections(frame.Detections)
	}
	return nil
}
