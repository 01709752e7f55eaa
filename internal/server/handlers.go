package server

import (
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mohsinali45213/folio/internal/id"
	"github.com/mohsinali45213/folio/internal/model"
)

// maxUploadBytes matches the blob bucket's 5 MB limit.
const maxUploadBytes = 5 << 20

func (s *Server) getContent(c *fiber.Ctx) error {
	snap := s.cache.Snapshot()
	return c.JSON(fiber.Map{
		"personalInfo": snap.PersonalInfo,
		"experiences":  snap.Experiences,
		"projects":     snap.Projects,
		"skills":       snap.Skills,
		"certificates": snap.Certificates,
	})
}

func (s *Server) getInfo(c *fiber.Ctx) error {
	return c.JSON(s.cache.Snapshot().PersonalInfo)
}

func (s *Server) getExperiences(c *fiber.Ctx) error {
	return c.JSON(s.cache.Snapshot().Experiences)
}

func (s *Server) getProjects(c *fiber.Ctx) error {
	return c.JSON(s.cache.Snapshot().Projects)
}

func (s *Server) getSkills(c *fiber.Ctx) error {
	return c.JSON(s.cache.Snapshot().Skills)
}

func (s *Server) getCertificates(c *fiber.Ctx) error {
	return c.JSON(s.cache.Snapshot().Certificates)
}

func (s *Server) postContact(c *fiber.Ctx) error {
	var msg model.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := msg.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	created, err := s.services.CreateMessage(msg)
	if err != nil {
		log.Printf("warning: storing contact message: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "message could not be delivered"})
	}
	s.cache.LoadMessages()
	return c.Status(fiber.StatusCreated).JSON(created)
}

// uploadFormImage stores the request's "img" file in the blob bucket and
// returns its view URL. Returns "" with no error when the field is absent.
func (s *Server) uploadFormImage(c *fiber.Ctx) (string, error) {
	header, err := c.FormFile("img")
	if err != nil {
		return "", nil
	}
	return s.storeImage(header)
}

func (s *Server) storeImage(header *multipart.FileHeader) (string, error) {
	if header.Size > maxUploadBytes {
		return "", fmt.Errorf("%s exceeds the 5 MB limit", header.Filename)
	}
	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s is not an image", header.Filename)
	}
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	defer file.Close()

	fileID, err := id.Unique()
	if err != nil {
		return "", err
	}
	uploaded, err := s.blobs.CreateFile(s.bucket, fileID, header.Filename, mimeType, file)
	if err != nil {
		return "", fmt.Errorf("storing upload: %w", err)
	}
	return s.blobs.FileViewURL(s.bucket, uploaded.ID), nil
}

func (s *Server) listLegacySkills(c *fiber.Ctx) error {
	var skills []SkillRecord
	if err := s.db.Find(&skills).Error; err != nil {
		log.Printf("warning: listing legacy skills: %v", err)
		skills = []SkillRecord{}
	}
	return c.JSON(skills)
}

func (s *Server) createLegacySkill(c *fiber.Ctx) error {
	record := SkillRecord{Name: c.FormValue("name")}
	if record.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	img, err := s.uploadFormImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	record.Img = img
	if err := s.db.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "skill could not be saved"})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) updateLegacySkill(c *fiber.Ctx) error {
	var record SkillRecord
	if err := s.db.First(&record, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "skill not found"})
	}
	if name := c.FormValue("name"); name != "" {
		record.Name = name
	}
	img, err := s.uploadFormImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if img != "" {
		record.Img = img
	}
	if err := s.db.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "skill could not be saved"})
	}
	return c.JSON(record)
}

func (s *Server) deleteLegacySkill(c *fiber.Ctx) error {
	var record SkillRecord
	if err := s.db.First(&record, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "skill not found"})
	}
	if err := s.db.Delete(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "skill could not be deleted"})
	}
	return c.JSON(record)
}

func (s *Server) listLegacyProjects(c *fiber.Ctx) error {
	var projects []ProjectRecord
	if err := s.db.Find(&projects).Error; err != nil {
		log.Printf("warning: listing legacy projects: %v", err)
		projects = []ProjectRecord{}
	}
	return c.JSON(projects)
}

func (s *Server) createLegacyProject(c *fiber.Ctx) error {
	record := ProjectRecord{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		LiveURL:     c.FormValue("liveUrl"),
		SourceURL:   c.FormValue("sourceUrl"),
	}
	if record.Name == "" || record.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and description are required"})
	}
	img, err := s.uploadFormImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	record.Img = img
	if err := s.db.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "project could not be saved"})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) updateLegacyProject(c *fiber.Ctx) error {
	var record ProjectRecord
	if err := s.db.First(&record, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
	}
	if v := c.FormValue("name"); v != "" {
		record.Name = v
	}
	if v := c.FormValue("description"); v != "" {
		record.Description = v
	}
	if v := c.FormValue("liveUrl"); v != "" {
		record.LiveURL = v
	}
	if v := c.FormValue("sourceUrl"); v != "" {
		record.SourceURL = v
	}
	img, err := s.uploadFormImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if img != "" {
		record.Img = img
	}
	if err := s.db.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "project could not be saved"})
	}
	return c.JSON(record)
}

func (s *Server) deleteLegacyProject(c *fiber.Ctx) error {
	var record ProjectRecord
	if err := s.db.First(&record, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
	}
	if err := s.db.Delete(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "project could not be deleted"})
	}
	return c.JSON(record)
}
