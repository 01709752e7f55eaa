// Package store holds an in-memory aggregate of all portfolio content, one
// load away from the remote document store. Render and serve paths read the
// cache; writers persist through the content services and then re-load.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/model"
)

// Source is the slice of the content services the cache loads from.
// *content.Services satisfies it.
type Source interface {
	PersonalInfo() (*model.PersonalInfo, error)
	Experiences() []model.Experience
	Projects() []model.Project
	Skills() []model.Skill
	Certificates() []model.Certificate
	Messages() []model.ContactMessage
}

// Content caches every collection behind one lock. Overlapping loads are
// allowed; the last writer wins.
type Content struct {
	mu sync.RWMutex

	personalInfo model.PersonalInfo
	experiences  []model.Experience
	projects     []model.Project
	skills       []model.Skill
	certificates []model.Certificate
	messages     []model.ContactMessage

	loading bool
	err     error

	src Source
}

func New(src Source) *Content {
	return &Content{
		src:          src,
		personalInfo: model.DefaultPersonalInfo(),
		experiences:  []model.Experience{},
		projects:     []model.Project{},
		skills:       []model.Skill{},
		certificates: []model.Certificate{},
		messages:     []model.ContactMessage{},
	}
}

func (c *Content) beginLoad() {
	c.mu.Lock()
	c.loading = true
	c.err = nil
	c.mu.Unlock()
}

// LoadPersonalInfo refreshes the profile singleton. A missing document falls
// back to the default profile; any other failure records the error and keeps
// the previous value.
func (c *Content) LoadPersonalInfo() error {
	c.beginLoad()
	info, err := c.src.PersonalInfo()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.personalInfo = model.DefaultPersonalInfo()
			return nil
		}
		c.err = err
		return err
	}
	c.personalInfo = *info
	return nil
}

func (c *Content) LoadExperiences() {
	c.beginLoad()
	experiences := c.src.Experiences()

	c.mu.Lock()
	c.experiences = experiences
	c.loading = false
	c.mu.Unlock()
}

func (c *Content) LoadProjects() {
	c.beginLoad()
	projects := c.src.Projects()

	c.mu.Lock()
	c.projects = projects
	c.loading = false
	c.mu.Unlock()
}

func (c *Content) LoadSkills() {
	c.beginLoad()
	skills := c.src.Skills()

	c.mu.Lock()
	c.skills = skills
	c.loading = false
	c.mu.Unlock()
}

func (c *Content) LoadCertificates() {
	c.beginLoad()
	certificates := c.src.Certificates()

	c.mu.Lock()
	c.certificates = certificates
	c.loading = false
	c.mu.Unlock()
}

func (c *Content) LoadMessages() {
	c.beginLoad()
	messages := c.src.Messages()

	c.mu.Lock()
	c.messages = messages
	c.loading = false
	c.mu.Unlock()
}

// LoadAll fetches every collection concurrently and commits the results in a
// single critical section once all fetches return. ctx cancellation stops
// the commit; in-flight fetches are left to finish on their own.
func (c *Content) LoadAll(ctx context.Context) error {
	c.beginLoad()

	var (
		wg           sync.WaitGroup
		info         *model.PersonalInfo
		infoErr      error
		experiences  []model.Experience
		projects     []model.Project
		skills       []model.Skill
		certificates []model.Certificate
		messages     []model.ContactMessage
	)

	wg.Add(6)
	go func() { defer wg.Done(); info, infoErr = c.src.PersonalInfo() }()
	go func() { defer wg.Done(); experiences = c.src.Experiences() }()
	go func() { defer wg.Done(); projects = c.src.Projects() }()
	go func() { defer wg.Done(); skills = c.src.Skills() }()
	go func() { defer wg.Done(); certificates = c.src.Certificates() }()
	go func() { defer wg.Done(); messages = c.src.Messages() }()

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-ctx.Done():
		c.mu.Lock()
		c.loading = false
		c.err = ctx.Err()
		c.mu.Unlock()
		return ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	switch {
	case infoErr == nil:
		c.personalInfo = *info
	case errors.Is(infoErr, content.ErrNotFound):
		c.personalInfo = model.DefaultPersonalInfo()
	default:
		c.err = infoErr
	}
	c.experiences = experiences
	c.projects = projects
	c.skills = skills
	c.certificates = certificates
	c.messages = messages
	if c.err != nil {
		return c.err
	}
	return nil
}

// SetPersonalInfo replaces the cached profile without persisting it.
func (c *Content) SetPersonalInfo(info model.PersonalInfo) {
	c.mu.Lock()
	c.personalInfo = info
	c.mu.Unlock()
}

func (c *Content) SetExperiences(experiences []model.Experience) {
	c.mu.Lock()
	c.experiences = experiences
	c.mu.Unlock()
}

func (c *Content) SetProjects(projects []model.Project) {
	c.mu.Lock()
	c.projects = projects
	c.mu.Unlock()
}

func (c *Content) SetSkills(skills []model.Skill) {
	c.mu.Lock()
	c.skills = skills
	c.mu.Unlock()
}

func (c *Content) SetCertificates(certificates []model.Certificate) {
	c.mu.Lock()
	c.certificates = certificates
	c.mu.Unlock()
}

func (c *Content) SetMessages(messages []model.ContactMessage) {
	c.mu.Lock()
	c.messages = messages
	c.mu.Unlock()
}

// Snapshot is a point-in-time copy of the cache, safe to read without
// holding the store's lock.
type Snapshot struct {
	PersonalInfo model.PersonalInfo
	Experiences  []model.Experience
	Projects     []model.Project
	Skills       []model.Skill
	Certificates []model.Certificate
	Messages     []model.ContactMessage
	Loading      bool
	Err          error
}

func (c *Content) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		PersonalInfo: c.personalInfo,
		Experiences:  append([]model.Experience(nil), c.experiences...),
		Projects:     append([]model.Project(nil), c.projects...),
		Skills:       append([]model.Skill(nil), c.skills...),
		Certificates: append([]model.Certificate(nil), c.certificates...),
		Messages:     append([]model.ContactMessage(nil), c.messages...),
		Loading:      c.loading,
		Err:          c.err,
	}
}
