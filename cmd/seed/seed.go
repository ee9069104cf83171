package main

import (
	"context"
	"fmt"

	"github.com/campuslink/campuslink/backend/go-services/internal/models"
	"github.com/campuslink/campuslink/backend/go-services/internal/service"
)

func strPtr(s string) *string { return &s }

// seed creates the demo records in dependency order and returns their ids by
// name.
func seed(ctx context.Context, svc *service.Service) (map[string]string, error) {
	ids := map[string]string{}
	create := func(name string, rec models.Record) error {
		id, err := svc.Create(ctx, rec)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		ids[name] = id
		return nil
	}

	if err := create("student", &models.User{
		Name: "Asha Rao", Email: "asha.rao@campus.edu", Role: models.RoleStudent,
		College: strPtr("Campus Institute of Technology"), Department: strPtr("Computer Science"),
	}); err != nil {
		return nil, err
	}
	if err := create("company", &models.User{
		Name: "Priya Nair", Email: "talent@acme.example", Role: models.RoleCompany,
		CompanyName: strPtr("Acme Labs"), Headline: strPtr("Hiring backend interns"), Verified: true,
	}); err != nil {
		return nil, err
	}
	if err := create("post", &models.Post{
		Type: models.PostInternshipRequest, Title: "Looking for a summer backend internship",
		Content: "Comfortable with Go and MongoDB.", Tags: []string{"internship", "go", "backend"},
		CreatedBy: ids["student"],
	}); err != nil {
		return nil, err
	}
	if err := create("comment", &models.Comment{
		PostID: ids["post"], Content: "We have an opening, see our offer.", CreatedBy: ids["company"],
	}); err != nil {
		return nil, err
	}
	if err := create("reply", &models.Comment{
		PostID: ids["post"], Content: "Thanks, applying now!", CreatedBy: ids["student"], ParentID: strPtr(ids["comment"]),
	}); err != nil {
		return nil, err
	}
	if err := create("offer", &models.Offer{
		Title: "Backend Intern", Description: "Build APIs in Go.", Location: strPtr("Remote"),
		Stipend: strPtr("25000/month"), PostID: strPtr(ids["post"]), CreatedBy: ids["company"],
	}); err != nil {
		return nil, err
	}
	return ids, nil
}
