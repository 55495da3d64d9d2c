// Package uploader creates or reuses a Vertex AI Tensorboard experiment and
// streams new entries from a local log directory to it in the background.
package uploader

import (
	"context"
	"fmt"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// webServerHost is the host serving the Tensorboard web UI.
const webServerHost = "tensorboard.googleusercontent.com"

// VertexService wraps the Vertex AI Tensorboard API with lookup-or-create
// semantics. Every Ensure method is idempotent by display name within a
// project/location scope.
type VertexService struct {
	logger   zerolog.Logger
	client   *aiplatform.TensorboardClient
	project  string
	location string
}

// NewVertexService creates a service bound to one project and location.
func NewVertexService(ctx context.Context, logger zerolog.Logger, project, location string) (*VertexService, error) {
	endpoint := fmt.Sprintf("%s-aiplatform.googleapis.com:443", location)
	client, err := aiplatform.NewTensorboardClient(ctx, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create tensorboard client: %w", err)
	}
	return &VertexService{
		logger:   logger,
		client:   client,
		project:  project,
		location: location,
	}, nil
}

func (s *VertexService) parent() string {
	return fmt.Sprintf("projects/%s/locations/%s", s.project, s.location)
}

// EnsureTensorboard returns the resource name of the Tensorboard instance
// with the given display name, creating it when absent. When several
// instances share the name, the first one wins.
func (s *VertexService) EnsureTensorboard(ctx context.Context, displayName string) (string, error) {
	it := s.client.ListTensorboards(ctx, &aiplatformpb.ListTensorboardsRequest{
		Parent: s.parent(),
		Filter: fmt.Sprintf("display_name=%q", displayName),
	})
	tb, err := it.Next()
	switch {
	case err == nil:
		s.logger.Info().
			Str("tensorboard", tb.GetName()).
			Str("display_name", displayName).
			Msg("Reusing existing Tensorboard instance")
		return tb.GetName(), nil
	case err != iterator.Done:
		return "", fmt.Errorf("failed to list tensorboards: %w", err)
	}

	s.logger.Info().Str("display_name", displayName).Msg("Creating Tensorboard instance")
	op, err := s.client.CreateTensorboard(ctx, &aiplatformpb.CreateTensorboardRequest{
		Parent:      s.parent(),
		Tensorboard: &aiplatformpb.Tensorboard{DisplayName: displayName},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create tensorboard: %w", err)
	}
	created, err := op.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("failed waiting for tensorboard creation: %w", err)
	}
	return created.GetName(), nil
}

// EnsureExperiment returns the resource name and web UI URL of the named
// experiment under the named Tensorboard instance, creating either when
// absent.
func (s *VertexService) EnsureExperiment(ctx context.Context, tensorboardName, experimentName string) (string, string, error) {
	tbID, err := s.EnsureTensorboard(ctx, tensorboardName)
	if err != nil {
		return "", "", err
	}

	fullName := fmt.Sprintf("%s/experiments/%s", tbID, experimentName)
	exp, err := s.client.GetTensorboardExperiment(ctx, &aiplatformpb.GetTensorboardExperimentRequest{
		Name: fullName,
	})
	if err == nil {
		s.logger.Info().
			Str("experiment", exp.GetName()).
			Msg("Reusing existing Tensorboard experiment")
		return exp.GetName(), s.experimentURL(exp.GetName()), nil
	}
	if status.Code(err) != codes.NotFound {
		return "", "", fmt.Errorf("failed to get experiment: %w", err)
	}

	s.logger.Info().
		Str("tensorboard", tbID).
		Str("experiment", experimentName).
		Msg("Creating Tensorboard experiment")
	exp, err = s.client.CreateTensorboardExperiment(ctx, &aiplatformpb.CreateTensorboardExperimentRequest{
		Parent: tbID,
		TensorboardExperiment: &aiplatformpb.TensorboardExperiment{
			DisplayName: experimentName,
		},
		TensorboardExperimentId: experimentName,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create experiment: %w", err)
	}
	return exp.GetName(), s.experimentURL(exp.GetName()), nil
}

// EnsureRun returns the resource name of a run under the experiment,
// creating it when absent.
func (s *VertexService) EnsureRun(ctx context.Context, experimentName, runID string) (string, error) {
	run, err := s.client.CreateTensorboardRun(ctx, &aiplatformpb.CreateTensorboardRunRequest{
		Parent:           experimentName,
		TensorboardRun:   &aiplatformpb.TensorboardRun{DisplayName: runID},
		TensorboardRunId: runID,
	})
	if err == nil {
		return run.GetName(), nil
	}
	if status.Code(err) == codes.AlreadyExists {
		return fmt.Sprintf("%s/runs/%s", experimentName, runID), nil
	}
	return "", fmt.Errorf("failed to create run: %w", err)
}

// AppendRunData writes scalar events to a run, creating the backing time
// series on first use.
func (s *VertexService) AppendRunData(ctx context.Context, runName string, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	byTag := make(map[string][]*aiplatformpb.TimeSeriesDataPoint)
	for _, e := range events {
		byTag[e.Tag] = append(byTag[e.Tag], &aiplatformpb.TimeSeriesDataPoint{
			Value:    &aiplatformpb.TimeSeriesDataPoint_Scalar{Scalar: &aiplatformpb.Scalar{Value: e.Value}},
			Step:     e.Step,
			WallTime: timestamppb.New(e.WallTime),
		})
	}

	data := make([]*aiplatformpb.TimeSeriesData, 0, len(byTag))
	for tag, points := range byTag {
		data = append(data, &aiplatformpb.TimeSeriesData{
			TensorboardTimeSeriesId: tag,
			ValueType:               aiplatformpb.TensorboardTimeSeries_SCALAR,
			Values:                  points,
		})
	}

	_, err := s.client.WriteTensorboardRunData(ctx, &aiplatformpb.WriteTensorboardRunDataRequest{
		TensorboardRun: runName,
		TimeSeriesData: data,
	})
	if status.Code(err) != codes.NotFound {
		return err
	}

	// First write for a tag: create the time series, then retry once.
	for tag := range byTag {
		_, cerr := s.client.CreateTensorboardTimeSeries(ctx, &aiplatformpb.CreateTensorboardTimeSeriesRequest{
			Parent: runName,
			TensorboardTimeSeries: &aiplatformpb.TensorboardTimeSeries{
				DisplayName: tag,
				ValueType:   aiplatformpb.TensorboardTimeSeries_SCALAR,
			},
		})
		if cerr != nil && status.Code(cerr) != codes.AlreadyExists {
			return fmt.Errorf("failed to create time series %s: %w", tag, cerr)
		}
	}
	_, err = s.client.WriteTensorboardRunData(ctx, &aiplatformpb.WriteTensorboardRunDataRequest{
		TensorboardRun: runName,
		TimeSeriesData: data,
	})
	return err
}

// experimentURL returns the web UI URL for an experiment resource name.
func (s *VertexService) experimentURL(experimentResource string) string {
	return fmt.Sprintf("https://%s.%s/experiment/%s",
		s.location, webServerHost, strings.ReplaceAll(experimentResource, "/", "+"))
}

// Close releases the underlying API client.
func (s *VertexService) Close() error {
	return s.client.Close()
}
