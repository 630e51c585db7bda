package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// ResourceIDPrefix starts every generated resource ID.
const ResourceIDPrefix = "R"

type resourceService struct {
	BaseService
	resourceRepo portsrepo.ResourceRepositoryFacade
}

// NewResourceService creates a new resource library service.
func NewResourceService(repo portsrepo.ResourceRepositoryFacade, options ...ServiceOption) portssvc.ResourceSvcFacade {
	return &resourceService{BaseService: newBase(options), resourceRepo: repo}
}

var _ portssvc.ResourceSvcFacade = (*resourceService)(nil)

func (s *resourceService) ListResources(ctx context.Context, actor *domain.Actor, category string) ([]domain.ProgramResource, error) {
	if err := s.Authorize(ctx, actor, domain.CapResourceLibrary); err != nil {
		return nil, err
	}
	if category != "" && !domain.IsResourceCategory(category) {
		return nil, fmt.Errorf("%w: unknown resource category %q", apperrors.ErrValidation, category)
	}
	resources, err := s.resourceRepo.ListResources(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list resources")
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	if category == "" {
		return resources, nil
	}
	out := make([]domain.ProgramResource, 0, len(resources))
	for _, r := range resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *resourceService) GetResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error) {
	if err := s.Authorize(ctx, actor, domain.CapResourceLibrary); err != nil {
		return nil, err
	}
	resource, err := s.resourceRepo.FindResourceByID(ctx, resourceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find resource", slog.String("resource_id", resourceID))
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) CreateResource(ctx context.Context, actor *domain.Actor, req dto.CreateResourceRequest) (*domain.ProgramResource, error) {
	if err := s.Authorize(ctx, actor, domain.CapResourceLibrary); err != nil {
		return nil, err
	}
	fileName := strings.TrimSpace(req.FileName)
	if !domain.IsAllowedResourceFile(fileName) {
		return nil, fmt.Errorf("%w: file type %q is not accepted", apperrors.ErrValidation, domain.ResourceExtension(fileName))
	}
	if req.FileSize != nil && *req.FileSize > domain.MaxResourceFileSize {
		return nil, fmt.Errorf("%w: file exceeds the %d MB limit", apperrors.ErrValidation, domain.MaxResourceFileSize>>20)
	}
	id, err := utils.GenerateRecordID(ResourceIDPrefix)
	if err != nil {
		return nil, err
	}

	resource := domain.ProgramResource{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Type:        strings.TrimSpace(req.Type),
		Category:    req.Category,
		DateAdded:   s.Now(),
		FileURL:     req.FileURL,
		FileName:    fileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
		StoragePath: req.StoragePath,
	}
	if resource.Name == "" {
		resource.Name = strings.TrimSuffix(fileName, path.Ext(fileName))
	}
	if resource.Type == "" {
		resource.Type = domain.ResourceTypeLabel(req.FileType)
	}
	if err := validateResource(resource); err != nil {
		return nil, err
	}

	if err := s.resourceRepo.SaveResource(ctx, resource); err != nil {
		s.logUnexpected(ctx, err, "Failed to save resource", slog.String("resource_id", resource.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Resource added", slog.String("resource_id", resource.ID), slog.String("category", resource.Category))
	return &resource, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, actor *domain.Actor, resourceID string, req dto.UpdateResourceRequest) (*domain.ProgramResource, error) {
	if err := s.Authorize(ctx, actor, domain.CapResourceLibrary); err != nil {
		return nil, err
	}
	resource, err := s.resourceRepo.FindResourceByID(ctx, resourceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find resource for update", slog.String("resource_id", resourceID))
		return nil, err
	}
	if req.Name != nil {
		resource.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		resource.Type = strings.TrimSpace(*req.Type)
	}
	if req.Category != nil {
		resource.Category = *req.Category
	}
	if err := validateResource(*resource); err != nil {
		return nil, err
	}

	if err := s.resourceRepo.UpdateResource(ctx, *resource); err != nil {
		s.logUnexpected(ctx, err, "Failed to update resource", slog.String("resource_id", resourceID))
		return nil, err
	}
	s.LogInfo(ctx, "Resource updated", slog.String("resource_id", resourceID))
	return resource, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error) {
	if err := s.Authorize(ctx, actor, domain.CapResourceLibrary); err != nil {
		return nil, err
	}
	resource, err := s.resourceRepo.FindResourceByID(ctx, resourceID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find resource for delete", slog.String("resource_id", resourceID))
		return nil, err
	}
	if err := s.resourceRepo.DeleteResource(ctx, resourceID); err != nil {
		s.logUnexpected(ctx, err, "Failed to delete resource", slog.String("resource_id", resourceID))
		return nil, err
	}
	s.LogInfo(ctx, "Resource deleted", slog.String("resource_id", resourceID),
		slog.String("storage_path", resource.StoragePath))
	return resource, nil
}

func validateResource(r domain.ProgramResource) error {
	if r.Name == "" {
		return fmt.Errorf("%w: resource name is required", apperrors.ErrValidation)
	}
	if !domain.IsResourceCategory(r.Category) {
		return fmt.Errorf("%w: unknown resource category %q", apperrors.ErrValidation, r.Category)
	}
	return nil
}
