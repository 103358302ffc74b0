package guard

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/estebanrs/aulabot/pkg/audit"
	"github.com/estebanrs/aulabot/pkg/logger"
	"github.com/estebanrs/aulabot/pkg/skills"
	"github.com/estebanrs/aulabot/pkg/telemetry"
)

// Gate is the release pipeline for generated content: output-contract
// validation followed by leakage scanning, with audit events and trace
// spans along the way. The underlying operations stay total; the gate
// only adds observability and a combined decision.
type Gate struct {
	registry *skills.Registry
	detector *Detector
	sink     audit.Sink
}

// NewGate builds a gate over the registry. A nil sink falls back to the
// discarding sink.
func NewGate(registry *skills.Registry, sink audit.Sink) *Gate {
	if sink == nil {
		sink = audit.Nop{}
	}
	return &Gate{
		registry: registry,
		detector: NewDetector(),
		sink:     sink,
	}
}

// Decision is the gate's verdict on one piece of generated output.
// Released is true only when validation passed and nothing leaked.
type Decision struct {
	Released   bool                    `json:"released"`
	Validation skills.ValidationResult `json:"validation"`
	Leakage    LeakageResult           `json:"leakage"`
}

// Route matches free text to a skill and records the routing decision.
func (g *Gate) Route(ctx context.Context, text string, isAdmin bool) skills.MatchResult {
	var result skills.MatchResult
	telemetry.WithSpanFunc(ctx, "skills.match", func(ctx context.Context) {
		result = g.registry.Match(text, isAdmin)
		telemetry.SetAttributes(ctx,
			attribute.String("skill.id", result.SkillID),
			attribute.Float64("skill.confidence", result.Confidence),
		)

		event := audit.NewEvent(audit.ActionSkillMatched, result.SkillID)
		event.Fields = map[string]any{
			"matched":    result.Matched(),
			"isAdmin":    isAdmin,
			"confidence": result.Confidence,
		}
		g.sink.Record(ctx, event)
	}, attribute.Bool("caller.admin", isAdmin))
	return result
}

// Release decides whether a skill's raw output may be shown to the
// caller. Invalid output and detected leakage both block; the caller
// owns the user-facing fallback.
func (g *Gate) Release(ctx context.Context, skillID string, output any) Decision {
	var decision Decision
	telemetry.WithSpanFunc(ctx, "guard.release", func(ctx context.Context) {
		decision = g.release(ctx, skillID, output)
		telemetry.SetAttributes(ctx,
			attribute.Bool("guard.released", decision.Released),
			attribute.Bool("guard.leaked", decision.Leakage.Leaked),
		)
	}, attribute.String("skill.id", skillID))
	return decision
}

func (g *Gate) release(ctx context.Context, skillID string, output any) Decision {
	validation := g.registry.ValidateOutput(skillID, output)
	if !validation.Valid {
		telemetry.AddEvent(ctx, "output rejected")
		event := audit.NewEvent(audit.ActionOutputRejected, skillID)
		event.Detail = validation.Errors
		g.sink.Record(ctx, event)
		return Decision{Validation: validation}
	}

	leakage := g.scan(output)
	if leakage.Leaked {
		telemetry.AddEvent(ctx, "leakage blocked")
		logger.G(ctx).WithField("skillId", skillID).Warn("generated output withheld by leakage detector")
		event := audit.NewEvent(audit.ActionLeakageBlocked, skillID)
		event.Detail = leakage.Issues
		g.sink.Record(ctx, event)
		return Decision{Validation: validation, Leakage: leakage}
	}

	g.sink.Record(ctx, audit.NewEvent(audit.ActionOutputReleased, skillID))
	return Decision{Released: true, Validation: validation, Leakage: leakage}
}

// scan applies the detector to whichever shape the output took.
func (g *Gate) scan(output any) LeakageResult {
	switch v := output.(type) {
	case string:
		return g.detector.Check(v)
	case map[string]any:
		return g.detector.CheckFields(v)
	default:
		return g.detector.Check(fmt.Sprintf("%v", v))
	}
}

// Detector exposes the gate's leakage detector for callers that need to
// scan text outside the release flow.
func (g *Gate) Detector() *Detector {
	return g.detector
}
