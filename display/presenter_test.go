package display_test

import (
	"testing"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/display"
	"github.com/lixenwraith/cursor-chase/display/mocks"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/parameter"
	"go.uber.org/mock/gomock"
)

func ev(t event.EventType, payload any) event.GameEvent {
	return event.GameEvent{Type: t, Payload: payload}
}

func TestPresenterDeduplicatesScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	p := display.NewPresenter(sink, input.DeviceMouse)

	gomock.InOrder(
		sink.EXPECT().Score(10).Times(1),
		sink.EXPECT().Score(20).Times(1),
	)

	snap := engine.Snapshot{}
	p.HandleEvent(snap, ev(event.EventScoreChanged, &event.ScorePayload{Score: 10}))
	p.HandleEvent(snap, ev(event.EventScoreChanged, &event.ScorePayload{Score: 10}))
	p.HandleEvent(snap, ev(event.EventScoreChanged, &event.ScorePayload{Score: 20}))
}

func TestPresenterSessionLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	p := display.NewPresenter(sink, input.DeviceMouse)
	snap := engine.Snapshot{}

	// Start hides the prompt and panels
	sink.EXPECT().Instructions(false, "").Times(1)
	sink.EXPECT().GameOver(false, 0, 0, "").Times(1)
	sink.EXPECT().Hazard(false, 0.0).Times(1)
	p.HandleEvent(snap, ev(event.EventSessionStarted, &event.SessionPayload{ID: "a"}))

	// Hazard flips the bar on, game over hides it and shows the panel
	sink.EXPECT().Hazard(true, 100.0).Times(1)
	p.HandleEvent(snap, ev(event.EventHazardStarted, &event.HazardPayload{}))

	sink.EXPECT().Hazard(false, 0.0).Times(1)
	sink.EXPECT().GameOver(true, 30, 50, parameter.ReasonCaughtText).Times(1)
	over := ev(event.EventGameOver, &event.GameOverPayload{
		Reason: component.ReasonCaught, Score: 30, HighScore: 50,
	})
	p.HandleEvent(snap, over)
	p.HandleEvent(snap, over)

	// Reset restores the prompt; score and level are new values, hidden hazard is a repeat
	sink.EXPECT().GameOver(false, 0, 0, "").Times(1)
	sink.EXPECT().Instructions(true, parameter.InstructionsMouse).Times(1)
	sink.EXPECT().Score(0).Times(1)
	sink.EXPECT().Level(1).Times(1)
	p.HandleEvent(snap, ev(event.EventSessionReset, &event.SessionPayload{ID: "b"}))
}

func TestPresenterTouchInstructions(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	p := display.NewPresenter(sink, input.DeviceTouch)

	sink.EXPECT().Score(0)
	sink.EXPECT().Level(1)
	sink.EXPECT().Instructions(true, parameter.InstructionsTouch).Times(1)
	sink.EXPECT().GameOver(false, 0, 0, "")
	sink.EXPECT().Hazard(false, 0.0)

	waiting := engine.Snapshot{Mode: component.ModeWaiting, Level: 1}
	p.Sync(waiting)
	p.Sync(waiting)
}

func TestPresenterSyncHazardBar(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	p := display.NewPresenter(sink, input.DeviceMouse)

	sink.EXPECT().Score(5)
	sink.EXPECT().Level(4)
	sink.EXPECT().Instructions(false, "")
	sink.EXPECT().GameOver(false, 0, 0, "")
	gomock.InOrder(
		sink.EXPECT().Hazard(true, 50.0).Times(1),
		sink.EXPECT().Hazard(true, 25.0).Times(1),
	)

	snap := engine.Snapshot{
		Mode:             component.ModePlaying,
		Score:            5,
		Level:            4,
		ControlsReversed: true,
		ReverseFraction:  0.5,
	}
	p.Sync(snap)
	p.Sync(snap)
	snap.ReverseFraction = 0.25
	p.Sync(snap)
}

func TestReasonText(t *testing.T) {
	if display.ReasonText(component.ReasonBoundary) != "You hit the wall!" {
		t.Errorf("boundary text = %q", display.ReasonText(component.ReasonBoundary))
	}
	if display.ReasonText(component.ReasonCaught) != "The ball caught you!" {
		t.Errorf("caught text = %q", display.ReasonText(component.ReasonCaught))
	}
	if display.ReasonText(component.ReasonNone) != "" {
		t.Error("none reason should be empty")
	}
}

type frameRecorder struct{ frames []engine.Snapshot }

func (f *frameRecorder) Render(s engine.Snapshot) { f.frames = append(f.frames, s) }

func TestPresenterWrapSyncsBeforeRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	p := display.NewPresenter(sink, input.DeviceTouch)

	// First frame primes the waiting display
	sink.EXPECT().Score(0)
	sink.EXPECT().Level(1)
	sink.EXPECT().Instructions(true, display.InstructionText(input.DeviceTouch))
	sink.EXPECT().GameOver(false, 0, 0, "")
	sink.EXPECT().Hazard(false, 0.0)

	rec := &frameRecorder{}
	r := p.Wrap(rec)
	snap := engine.Snapshot{Mode: component.ModeWaiting}
	r.Render(snap)
	r.Render(snap)

	if len(rec.frames) != 2 {
		t.Fatalf("wrapped renderer drew %d frames, want 2", len(rec.frames))
	}
}
