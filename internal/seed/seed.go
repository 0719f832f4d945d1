// Package seed loads sample member data for development and demos.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/service"
)

// SampleMembers is the development data set. Three members carry no phone so
// the optional-field paths get exercised out of the box.
func SampleMembers() []model.CreateMemberRequest {
	phone := func(s string) *string { return &s }
	return []model.CreateMemberRequest{
		{Name: "Andi Pratama", Email: "andi.pratama@jogja.dev", Phone: phone("+62812345671")},
		{Name: "Siti Nurhaliza", Email: "siti.nurhaliza@python-jogja.org", Phone: phone("+62812345672")},
		{Name: "Budi Santoso", Email: "budi.santoso@gmail.com", Phone: phone("+62812345673")},
		{Name: "Maya Sari", Email: "maya.sari@yahoo.com"},
		{Name: "Rizki Ramadhan", Email: "rizki.ramadhan@outlook.com", Phone: phone("+62812345674")},
		{Name: "Indira Kusuma", Email: "indira.kusuma@python.id"},
		{Name: "Fajar Nugroho", Email: "fajar.nugroho@dev.co.id", Phone: phone("+62812345675")},
		{Name: "Dewi Lestari", Email: "dewi.lestari@jogja.ac.id", Phone: phone("+62812345676")},
		{Name: "Agus Wijaya", Email: "agus.wijaya@tech.com", Phone: phone("+62812345677")},
		{Name: "Rina Amelia", Email: "rina.amelia@startup.id"},
	}
}

// Result summarizes a seeding run.
type Result struct {
	Created int
	Skipped int
}

// Load registers the sample members through the service layer so normal
// validation and uniqueness rules apply. Members that already exist are
// skipped; seeding is safe to repeat.
func Load(ctx context.Context, members *service.MemberService) (Result, error) {
	var res Result
	for _, req := range SampleMembers() {
		_, err := members.Create(ctx, &req)
		if err != nil {
			var conflict *service.ConflictError
			if errors.As(err, &conflict) {
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("seeding %s: %w", req.Email, err)
		}
		res.Created++
	}
	return res, nil
}
