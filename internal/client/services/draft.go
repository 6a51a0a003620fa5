package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/introapp/freshintro/internal/client/client"
	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/client/repositories/drafts"
	"github.com/introapp/freshintro/internal/client/repositories/images"
	"github.com/introapp/freshintro/internal/client/wizard"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/imaging"
	"github.com/introapp/freshintro/internal/logging"
)

// DraftService owns the editing session: the draft, the staged images and
// the wizard position. All mutations go through it and are serialized.
type DraftService struct {
	mu sync.Mutex

	client    client.Client
	imageRepo images.Repository
	draftRepo drafts.Repository

	// uploads go straight to the presigned target, not through the API client
	uploadHTTP *http.Client

	opts  Options
	log   logging.Logger
	saver *debouncer

	wiz   *wizard.Wizard
	draft *models.ProfileDraft
}

// NewDraftService wires a DraftService over the given transport and local
// repositories. Call Bootstrap before anything else.
func NewDraftService(api client.Client, imageRepo images.Repository, draftRepo drafts.Repository, opts Options, log logging.Logger) *DraftService {
	return &DraftService{
		client:     api,
		imageRepo:  imageRepo,
		draftRepo:  draftRepo,
		uploadHTTP: &http.Client{},
		opts:       opts,
		log:        log,
		saver:      newDebouncer(opts.SaveDelay),
		wiz:        wizard.New(),
		draft:      models.EmptyDraft(),
	}
}

// Bootstrap hydrates the session. Cached draft and staged images are adopted
// only together; otherwise the server profile seeds both (404 means a fresh
// empty draft). A failed remote fetch degrades to an empty draft — logged,
// never fatal.
func (s *DraftService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached, ok, err := s.draftRepo.LoadDraft(ctx)
	if err != nil {
		s.log.Warn(ctx, "draft cache unreadable, falling back to server profile", "error", err)
		ok = false
	}

	if ok && cached.IsLoaded() {
		// adopt cache only when the image store is readable too, so the two
		// never rehydrate apart
		if _, imgErr := s.imageRepo.GetAll(ctx); imgErr == nil {
			s.draft = cached
			if step, stepOk, _ := s.draftRepo.LoadStep(ctx); stepOk {
				s.wiz.Restore(wizard.Step(step))
			}
			s.log.Debug(ctx, "resumed editing session from cache", "step", s.wiz.Current())
			return nil
		}
	}

	return s.hydrateFromServer(ctx)
}

func (s *DraftService) hydrateFromServer(ctx context.Context) error {
	remote, err := s.client.GetMyProfile(ctx)

	switch {
	case errors.Is(err, common.ErrProfileNotFound):
		s.draft = models.EmptyDraft()
		s.resetLocalState(ctx, nil)
		return nil

	case err != nil:
		s.log.Warn(ctx, "profile fetch failed, starting with empty draft", "error", err)
		s.draft = models.EmptyDraft()
		s.resetLocalState(ctx, nil)
		return nil
	}

	staged := make([]models.StagedImage, 0, len(remote.User.Images))
	for _, ri := range remote.User.Images {
		data, contentType, err := s.client.FetchImage(ctx, ri.ImageURL)
		if err != nil {
			s.log.Warn(ctx, "could not re-stage remote image", "url", ri.ImageURL, "error", err)
			continue
		}
		staged = append(staged, models.NewStagedImage(filenameFromURL(ri.ImageURL), contentType, data))
	}

	s.draft = remote.Draft()
	s.resetLocalState(ctx, staged)
	return nil
}

// resetLocalState writes the current draft, the given staged images and
// step 1 to local storage as one logical unit.
func (s *DraftService) resetLocalState(ctx context.Context, staged []models.StagedImage) {
	s.wiz.Reset()
	if err := s.imageRepo.ReplaceAll(ctx, staged); err != nil {
		s.log.Warn(ctx, "image store write failed, staging will not survive a restart", "error", err)
	}
	if err := s.draftRepo.SaveDraft(ctx, s.draft); err != nil {
		s.log.Warn(ctx, "draft cache write failed, draft will not survive a restart", "error", err)
	}
	if err := s.draftRepo.SaveStep(ctx, int(s.wiz.Current())); err != nil {
		s.log.Warn(ctx, "step write failed", "error", err)
	}
}

// filenameFromURL recovers the original filename from an object URL: the
// path base, minus the query, minus the key-suffix after "---". Falls back
// to image.jpg.
func filenameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "image.jpg"
	}
	name := path.Base(u.Path)
	name, _, _ = strings.Cut(name, "---")
	if name == "" || name == "." || name == "/" {
		return "image.jpg"
	}
	return name
}

// Draft returns a copy of the current draft for display.
func (s *DraftService) Draft() models.ProfileDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *cloneDraft(s.draft)
}

// Images returns the staged images in display order.
func (s *DraftService) Images(ctx context.Context) ([]models.StagedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageRepo.GetAll(ctx)
}

// Step returns the current wizard step.
func (s *DraftService) Step() wizard.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wiz.Current()
}

// Next advances the wizard and persists the new position.
func (s *DraftService) Next(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wiz.Next() {
		s.persistStep(ctx)
	}
}

// Back retreats the wizard and persists the new position.
func (s *DraftService) Back(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wiz.Back() {
		s.persistStep(ctx)
	}
}

func (s *DraftService) persistStep(ctx context.Context) {
	if err := s.draftRepo.SaveStep(ctx, int(s.wiz.Current())); err != nil {
		s.log.Warn(ctx, "step write failed", "error", err)
	}
}

// SetBio updates the bio and schedules a draft save.
func (s *DraftService) SetBio(v string) { s.setField(func(d *models.ProfileDraft) { d.Bio = v }) }

// SetBranch updates the branch and schedules a draft save.
func (s *DraftService) SetBranch(v string) { s.setField(func(d *models.ProfileDraft) { d.Branch = v }) }

// SetBatch updates the batch and schedules a draft save.
func (s *DraftService) SetBatch(v string) { s.setField(func(d *models.ProfileDraft) { d.Batch = v }) }

// SetHostel updates the hostel and schedules a draft save.
func (s *DraftService) SetHostel(v string) { s.setField(func(d *models.ProfileDraft) { d.Hostel = v }) }

// SetSocial sets the handle for a platform; an empty handle removes the entry.
func (s *DraftService) SetSocial(platform, handle string) {
	s.setField(func(d *models.ProfileDraft) {
		if d.Socials == nil {
			d.Socials = map[string]string{}
		}
		if handle == "" {
			delete(d.Socials, platform)
			return
		}
		d.Socials[platform] = handle
	})
}

func (s *DraftService) setField(mutate func(*models.ProfileDraft)) {
	s.mu.Lock()
	mutate(s.draft)
	snapshot := cloneDraft(s.draft)
	s.mu.Unlock()

	s.scheduleSave(snapshot)
}

// scheduleSave queues a debounced draft-cache write of the given snapshot.
// Later snapshots replace earlier pending ones, so the last state within the
// quiet window is what gets persisted.
func (s *DraftService) scheduleSave(snapshot *models.ProfileDraft) {
	s.saver.Trigger(func() {
		if err := s.draftRepo.SaveDraft(context.Background(), snapshot); err != nil {
			s.log.Warn(context.Background(), "draft cache write failed", "error", err)
		}
	})
}

// AddInterest validates and appends an interest tag. Violations return a
// ValidationError and leave the set unchanged.
func (s *DraftService) AddInterest(v string) error {
	return s.addTag(v, "interests", func(d *models.ProfileDraft) *[]string { return &d.Interests })
}

// RemoveInterest drops an interest tag; unknown values are a no-op.
func (s *DraftService) RemoveInterest(v string) {
	s.removeTag(v, func(d *models.ProfileDraft) *[]string { return &d.Interests })
}

// AddHobby validates and appends a hobby tag, under the same rules as
// interests.
func (s *DraftService) AddHobby(v string) error {
	return s.addTag(v, "hobbies", func(d *models.ProfileDraft) *[]string { return &d.Hobbies })
}

// RemoveHobby drops a hobby tag; unknown values are a no-op.
func (s *DraftService) RemoveHobby(v string) {
	s.removeTag(v, func(d *models.ProfileDraft) *[]string { return &d.Hobbies })
}

func (s *DraftService) addTag(v, field string, list func(*models.ProfileDraft) *[]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v = strings.TrimSpace(v)
	tags := list(s.draft)

	switch {
	case v == "":
		return &common.ValidationError{Field: field, Reason: "must not be empty"}
	case len(v) > s.opts.MaxInterestLen:
		return &common.ValidationError{Field: field, Reason: fmt.Sprintf("must not exceed %d characters", s.opts.MaxInterestLen)}
	case len(*tags) >= s.opts.MaxInterests:
		return &common.ValidationError{Field: field, Reason: fmt.Sprintf("at most %d allowed", s.opts.MaxInterests)}
	}

	for _, existing := range *tags {
		if strings.EqualFold(existing, v) {
			return &common.ValidationError{Field: field, Reason: "already added"}
		}
	}

	*tags = append(*tags, v)
	s.scheduleSave(cloneDraft(s.draft))
	return nil
}

func (s *DraftService) removeTag(v string, list func(*models.ProfileDraft) *[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := list(s.draft)
	out := (*tags)[:0]
	for _, existing := range *tags {
		if !strings.EqualFold(existing, v) {
			out = append(out, existing)
		}
	}
	*tags = out
	s.scheduleSave(cloneDraft(s.draft))
}

// AddImages stages new images, downscaling oversized ones first. The staged
// count may never exceed the configured bound; a violating batch is rejected
// whole.
func (s *DraftService) AddImages(ctx context.Context, imgs []models.StagedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.imageRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read staged images: %w", err)
	}
	if len(current)+len(imgs) > s.opts.MaxImages {
		return &common.ValidationError{
			Field:  "images",
			Reason: fmt.Sprintf("at most %d photos allowed", s.opts.MaxImages),
		}
	}

	staged := make([]models.StagedImage, 0, len(imgs))
	for _, img := range imgs {
		if s.opts.MaxUploadBytes > 0 && len(img.Data) > s.opts.MaxUploadBytes {
			data, err := imaging.Downscale(img.Data, s.opts.MaxImageWidth)
			if err != nil {
				s.log.Warn(ctx, "downscale failed, staging original", "file", img.Name, "error", err)
			} else if len(data) < len(img.Data) {
				img = models.NewStagedImage(img.Name, "image/jpeg", data)
			}
		}
		staged = append(staged, img)
	}

	if err := s.imageRepo.Put(ctx, staged); err != nil {
		return fmt.Errorf("stage images: %w", err)
	}
	return nil
}

// RemoveImage unstages the image at the given position.
func (s *DraftService) RemoveImage(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageRepo.RemoveAt(ctx, index)
}

// Reorder re-synchronizes the staged order after a drag-reorder. perm maps
// new positions to old ones and must be a permutation of the current indexes.
func (s *DraftService) Reorder(ctx context.Context, perm []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.imageRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read staged images: %w", err)
	}
	if len(perm) != len(current) {
		return &common.ValidationError{Field: "images", Reason: "reorder does not cover all photos"}
	}

	seen := make([]bool, len(current))
	ordered := make([]models.StagedImage, 0, len(current))
	for _, old := range perm {
		if old < 0 || old >= len(current) || seen[old] {
			return &common.ValidationError{Field: "images", Reason: "invalid reorder"}
		}
		seen[old] = true
		ordered = append(ordered, current[old])
	}

	return s.imageRepo.ReplaceAll(ctx, ordered)
}

// Submit finalizes the session from the confirm step: validate, upload each
// staged image in order, then write the profile. Any failure aborts with all
// local state intact; full success clears draft cache and image store and
// resets the wizard.
func (s *DraftService) Submit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wiz.CanSubmit() {
		return common.ErrNotConfirmStep
	}

	if err := s.validate(); err != nil {
		return err
	}

	// make the persisted draft match what the user sees before going remote
	s.saver.Flush()

	imgs, err := s.imageRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read staged images: %w", err)
	}

	keys, err := s.uploadAll(ctx, imgs)
	if err != nil {
		return err
	}

	req := &models.WriteProfileRequest{
		Bio:       s.draft.Bio,
		Branch:    s.draft.Branch,
		Batch:     s.draft.Batch,
		Hostel:    s.draft.Hostel,
		Interests: s.draft.Interests,
		Hobbies:   s.draft.Hobbies,
		Socials:   s.draft.Socials,
		ImageKeys: keys,
	}
	if err := s.client.CreateOrUpdateProfile(ctx, req); err != nil {
		return err
	}

	// full success is the only non-user-action path that drops local state
	if err := s.draftRepo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "draft cache clear failed", "error", err)
	}
	if err := s.imageRepo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "image store clear failed", "error", err)
	}
	s.draft = models.EmptyDraft()
	s.wiz.Reset()

	s.log.Info(ctx, "profile submitted", "images", len(keys))
	return nil
}

// Reset discards the whole editing session on explicit user request: both
// stores are cleared and the wizard returns to the first step. This and a
// fully successful submit are the only ways local state is dropped.
func (s *DraftService) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = models.EmptyDraft()
	s.resetLocalState(ctx, nil)
}

func (s *DraftService) validate() error {
	if strings.TrimSpace(s.draft.Bio) == "" {
		return &common.ValidationError{Field: "bio", Reason: "bio required"}
	}

	for _, field := range s.opts.RequiredFields {
		empty := false
		switch field {
		case "branch":
			empty = strings.TrimSpace(s.draft.Branch) == ""
		case "hostel":
			empty = strings.TrimSpace(s.draft.Hostel) == ""
		case "batch":
			empty = strings.TrimSpace(s.draft.Batch) == ""
		case "interests":
			empty = len(s.draft.Interests) == 0
		}
		if empty {
			return &common.ValidationError{Field: field, Reason: field + " required"}
		}
	}
	return nil
}

func cloneDraft(d *models.ProfileDraft) *models.ProfileDraft {
	out := *d
	out.Interests = append([]string(nil), d.Interests...)
	out.Hobbies = append([]string(nil), d.Hobbies...)
	if d.Socials != nil {
		out.Socials = make(map[string]string, len(d.Socials))
		for k, v := range d.Socials {
			out.Socials[k] = v
		}
	}
	return &out
}
