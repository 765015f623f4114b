package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

// PurgeDataUseCase discovers and removes orbit's XDG directories.
type PurgeDataUseCase struct {
	fs  port.FileSystem
	xdg port.XDGPaths
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg}
}

// GetPurgeTargets returns all purge targets with their current state.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	configDir, err := uc.xdg.ConfigDir()
	if err != nil {
		return nil, err
	}
	dataDir, err := uc.xdg.DataDir()
	if err != nil {
		return nil, err
	}
	stateDir, err := uc.xdg.StateDir()
	if err != nil {
		return nil, err
	}

	targets := []entity.PurgeTarget{
		{Type: entity.PurgeTargetConfig, Path: configDir, Description: "config"},
		{Type: entity.PurgeTargetData, Path: dataDir, Description: "bookmarks and exports"},
		{Type: entity.PurgeTargetState, Path: stateDir, Description: "logs"},
	}

	for i := range targets {
		t := &targets[i]
		exists, err := uc.fs.Exists(ctx, t.Path)
		if err != nil {
			return nil, err
		}
		t.Exists = exists
		if !exists {
			continue
		}
		if t.Size, err = uc.fs.GetSize(ctx, t.Path); err != nil {
			return nil, err
		}
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		if err := uc.fs.RemoveAll(ctx, t.Path); err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Stringer("target", t.Type).Str("path", t.Path).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Stringer("target", t.Type).Str("path", t.Path).Msg("purge target removed")
		}

		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges all existing targets (for --force mode).
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	return uc.Execute(ctx, PurgeInput{TargetTypes: []entity.PurgeTargetType{
		entity.PurgeTargetConfig,
		entity.PurgeTargetData,
		entity.PurgeTargetState,
	}})
}
