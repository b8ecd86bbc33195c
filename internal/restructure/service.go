package restructure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/postlayout/internal/filesystem"
	"github.com/temirov/postlayout/internal/reporting"
)

const (
	postsDirectoryFieldNameConstant       = "posts_directory"
	requiredValueMessageConstant          = "value required"
	transformerMissingMessageConstant     = "layout transformer not configured"
	postsDirectoryTrimCharactersConstant  = " \t"
	defaultPostFilePermissionsConstant    = 0o644
	postNameFieldTemplateConstant         = "%s: %w"
	postStatErrorTemplateConstant         = "unable to stat %s: %w"
	postReadErrorTemplateConstant         = "unable to read %s: %w"
	postInspectErrorTemplateConstant      = "unable to inspect %s: %w"
	postWriteErrorTemplateConstant        = "unable to write %s: %w"
	processingReportTemplateConstant      = "Processing: %s\n"
	skippedReportMessageConstant          = "  Already updated, skipping...\n"
	updatedReportMessageConstant          = "  Updated successfully\n"
	plannedReportMessageConstant          = "  Would update (dry run)\n"
	unchangedDryRunReportMessageConstant  = "  No changes (dry run)\n"
	failedReportTemplateConstant          = "  Failed: %v\n"
	completedReportMessageConstant        = "\nAll files processed!\n"
	logMessageRestructureStartedConstant  = "Post restructure started"
	logMessageDiscoveryCompletedConstant  = "Post discovery completed"
	logMessagePostExcludedConstant        = "Post excluded"
	logMessagePostSkippedConstant         = "Post already uses migrated layout"
	logMessagePostUpdatedConstant         = "Post layout migrated"
	logMessagePostUnchangedConstant       = "Post rewritten without layout changes"
	logMessagePostPlannedConstant         = "Post layout migration planned"
	logMessagePostFailedConstant          = "Post migration failed"
	logMessageContextCancelledConstant    = "Post restructure interrupted"
	logMessageStructureInspectionConstant = "Structural layout inspection completed"
	logFieldPostPathConstant              = "post"
	logFieldDetectionConstant             = "detection"
	logFieldCandidateCountConstant        = "candidates"
	logFieldExcludedCountConstant         = "excluded"
	logFieldExcludedFilesConstant         = "excluded_files"
	logFieldDryRunConstant                = "dry_run"
	logFieldContinueOnErrorConstant       = "continue_on_error"
	logFieldProcessedCountConstant        = "processed"
	logFieldRemainingCountConstant        = "remaining"
	logFieldOriginalByteCountConstant     = "bytes"
	logFieldTransformedByteCountConstant  = "transformed_bytes"
	logFieldMigratedConstant              = "migrated"
	detectionSignatureConstant            = "signature"
	detectionStructureConstant            = "structure"
)

// OutcomeStatus describes what happened to a single post.
type OutcomeStatus string

// Supported outcome statuses.
const (
	OutcomeExcluded  OutcomeStatus = "excluded"
	OutcomeSkipped   OutcomeStatus = "skipped"
	OutcomeUpdated   OutcomeStatus = "updated"
	OutcomeUnchanged OutcomeStatus = "unchanged"
	OutcomePlanned   OutcomeStatus = "planned"
	OutcomeFailed    OutcomeStatus = "failed"
)

// InvalidInputError describes restructure option validation failures.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", inputError.FieldName, inputError.Message)
}

// Options configures a restructure run.
type Options struct {
	PostsDirectory  string
	ExcludedFiles   []string
	DryRun          bool
	ContinueOnError bool
}

// PostOutcome records the result for one post.
type PostOutcome struct {
	Path   string
	Status OutcomeStatus
}

// Result captures the observable outcomes of a run in glob enumeration order,
// excluded files included at their enumerated position.
type Result struct {
	Outcomes []PostOutcome
}

// Count returns the number of posts that ended with the provided status.
func (result Result) Count(status OutcomeStatus) int {
	count := 0
	for _, outcome := range result.Outcomes {
		if outcome.Status == status {
			count++
		}
	}
	return count
}

// Paths returns the post paths that ended with the provided status.
func (result Result) Paths(status OutcomeStatus) []string {
	var paths []string
	for _, outcome := range result.Outcomes {
		if outcome.Status == status {
			paths = append(paths, outcome.Path)
		}
	}
	return paths
}

// Transformer rewrites post content.
type Transformer interface {
	Transform(content string) string
}

// LayoutInspector reports whether post content already uses the migrated layout.
type LayoutInspector interface {
	HasMigratedLayout(content string) (bool, error)
}

// Executor runs a restructure pass.
type Executor interface {
	Execute(executionContext context.Context, options Options) (Result, error)
}

// ServiceDependencies describes collaborators for the restructure service.
type ServiceDependencies struct {
	Logger      *zap.Logger
	FileSystem  filesystem.FileSystem
	Reporter    reporting.Reporter
	Transformer Transformer
	Inspector   LayoutInspector
}

// Service orchestrates discovery, the idempotence check, transformation, and writing of posts.
type Service struct {
	logger      *zap.Logger
	fileSystem  filesystem.FileSystem
	reporter    reporting.Reporter
	discoverer  *PostDiscoverer
	transformer Transformer
	inspector   LayoutInspector
}

var errTransformerMissing = errors.New(transformerMissingMessageConstant)

// NewService constructs a Service with the provided dependencies.
// The layout transformer and structure inspector are used when none are supplied.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, errFileSystemMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reporter := dependencies.Reporter
	if reporter == nil {
		reporter = reporting.NewDiscardReporter()
	}

	transformer := dependencies.Transformer
	if transformer == nil {
		transformer = NewLayoutTransformer()
	}

	inspector := dependencies.Inspector
	if inspector == nil {
		inspector = NewStructureInspector()
	}

	return &Service{
		logger:      logger,
		fileSystem:  dependencies.FileSystem,
		reporter:    reporter,
		discoverer:  NewPostDiscoverer(dependencies.FileSystem),
		transformer: transformer,
		inspector:   inspector,
	}, nil
}

// Execute migrates every eligible post in the configured directory, one at a time.
// The first failure aborts the run unless ContinueOnError is set, in which case
// failures are collected and returned together after the remaining posts are processed.
func (service *Service) Execute(executionContext context.Context, options Options) (Result, error) {
	if validationError := service.validateOptions(options); validationError != nil {
		return Result{}, validationError
	}
	if service.transformer == nil {
		return Result{}, errTransformerMissing
	}
	if executionContext == nil {
		executionContext = context.Background()
	}

	postsDirectory := strings.Trim(options.PostsDirectory, postsDirectoryTrimCharactersConstant)

	service.logger.Debug(
		logMessageRestructureStartedConstant,
		zap.String(postsDirectoryFieldNameConstant, postsDirectory),
		zap.Strings(logFieldExcludedFilesConstant, options.ExcludedFiles),
		zap.Bool(logFieldDryRunConstant, options.DryRun),
		zap.Bool(logFieldContinueOnErrorConstant, options.ContinueOnError),
	)

	discovery, discoveryError := service.discoverer.DiscoverPosts(postsDirectory, options.ExcludedFiles)
	if discoveryError != nil {
		return Result{}, discoveryError
	}

	candidates := discovery.Candidates()
	service.logger.Info(
		logMessageDiscoveryCompletedConstant,
		zap.String(postsDirectoryFieldNameConstant, postsDirectory),
		zap.Int(logFieldCandidateCountConstant, len(candidates)),
		zap.Int(logFieldExcludedCountConstant, len(discovery.Posts)-len(candidates)),
	)

	result := Result{Outcomes: make([]PostOutcome, 0, len(discovery.Posts))}
	var postErrors []error
	processedCount := 0
	for _, discoveredPost := range discovery.Posts {
		postPath := discoveredPost.Path
		if discoveredPost.Excluded {
			service.logger.Debug(logMessagePostExcludedConstant, zap.String(logFieldPostPathConstant, postPath))
			result.Outcomes = append(result.Outcomes, PostOutcome{Path: postPath, Status: OutcomeExcluded})
			continue
		}

		if contextError := executionContext.Err(); contextError != nil {
			service.logger.Warn(
				logMessageContextCancelledConstant,
				zap.Int(logFieldProcessedCountConstant, processedCount),
				zap.Int(logFieldRemainingCountConstant, len(candidates)-processedCount),
				zap.Error(contextError),
			)
			return result, contextError
		}
		processedCount++

		service.reporter.Printf(processingReportTemplateConstant, filepath.Base(postPath))

		status, postError := service.processPost(postPath, options.DryRun)
		if postError != nil {
			wrappedError := fmt.Errorf(postNameFieldTemplateConstant, filepath.Base(postPath), postError)
			service.logger.Warn(
				logMessagePostFailedConstant,
				zap.String(logFieldPostPathConstant, postPath),
				zap.Error(postError),
			)
			result.Outcomes = append(result.Outcomes, PostOutcome{Path: postPath, Status: OutcomeFailed})
			if !options.ContinueOnError {
				return result, wrappedError
			}
			service.reporter.Printf(failedReportTemplateConstant, postError)
			postErrors = append(postErrors, wrappedError)
			continue
		}

		result.Outcomes = append(result.Outcomes, PostOutcome{Path: postPath, Status: status})
	}

	service.reporter.Printf(completedReportMessageConstant)

	if len(postErrors) > 0 {
		return result, errors.Join(postErrors...)
	}

	return result, nil
}

func (service *Service) validateOptions(options Options) error {
	if len(strings.Trim(options.PostsDirectory, postsDirectoryTrimCharactersConstant)) == 0 {
		return InvalidInputError{FieldName: postsDirectoryFieldNameConstant, Message: requiredValueMessageConstant}
	}
	return nil
}

func (service *Service) processPost(postPath string, dryRun bool) (OutcomeStatus, error) {
	fileInfo, statError := service.fileSystem.Stat(postPath)
	if statError != nil {
		return OutcomeFailed, fmt.Errorf(postStatErrorTemplateConstant, postPath, statError)
	}

	contentBytes, readError := service.fileSystem.ReadFile(postPath)
	if readError != nil {
		return OutcomeFailed, fmt.Errorf(postReadErrorTemplateConstant, postPath, readError)
	}
	content := string(contentBytes)

	migrated, detection, inspectError := service.alreadyMigrated(content)
	if inspectError != nil {
		return OutcomeFailed, fmt.Errorf(postInspectErrorTemplateConstant, postPath, inspectError)
	}
	if migrated {
		service.reporter.Printf(skippedReportMessageConstant)
		service.logger.Info(
			logMessagePostSkippedConstant,
			zap.String(logFieldPostPathConstant, postPath),
			zap.String(logFieldDetectionConstant, detection),
		)
		return OutcomeSkipped, nil
	}

	transformed := service.transformer.Transform(content)
	changed := transformed != content

	if dryRun {
		if !changed {
			service.reporter.Printf(unchangedDryRunReportMessageConstant)
			return OutcomeUnchanged, nil
		}
		service.reporter.Printf(plannedReportMessageConstant)
		service.logger.Info(logMessagePostPlannedConstant, zap.String(logFieldPostPathConstant, postPath))
		return OutcomePlanned, nil
	}

	if writeError := service.fileSystem.WriteFile(postPath, []byte(transformed), postPermissions(fileInfo.Mode())); writeError != nil {
		return OutcomeFailed, fmt.Errorf(postWriteErrorTemplateConstant, postPath, writeError)
	}

	service.reporter.Printf(updatedReportMessageConstant)

	if !changed {
		service.logger.Debug(
			logMessagePostUnchangedConstant,
			zap.String(logFieldPostPathConstant, postPath),
			zap.Int(logFieldOriginalByteCountConstant, len(contentBytes)),
		)
		return OutcomeUnchanged, nil
	}

	service.logger.Info(
		logMessagePostUpdatedConstant,
		zap.String(logFieldPostPathConstant, postPath),
		zap.Int(logFieldOriginalByteCountConstant, len(contentBytes)),
		zap.Int(logFieldTransformedByteCountConstant, len(transformed)),
	)
	return OutcomeUpdated, nil
}

// alreadyMigrated checks the literal signature first and falls back to structural inspection.
func (service *Service) alreadyMigrated(content string) (bool, string, error) {
	if HasMigratedSignature(content) {
		return true, detectionSignatureConstant, nil
	}
	if service.inspector == nil {
		return false, "", nil
	}

	migrated, inspectError := service.inspector.HasMigratedLayout(content)
	if inspectError != nil {
		return false, "", inspectError
	}
	service.logger.Debug(logMessageStructureInspectionConstant, zap.Bool(logFieldMigratedConstant, migrated))
	if migrated {
		return true, detectionStructureConstant, nil
	}
	return false, "", nil
}

func postPermissions(mode fs.FileMode) fs.FileMode {
	permissions := mode.Perm()
	if permissions == 0 {
		return defaultPostFilePermissionsConstant
	}
	return permissions
}
