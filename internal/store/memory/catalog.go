package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/pkg/apperr"
)

// Catalog implements the reference-data port over in-memory slices.
type Catalog struct{ s *Store }

// Events

func (v *Catalog) ListEvents(_ context.Context) ([]models.Event, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Event, 0, len(v.s.events))
	for _, e := range v.s.events {
		list = append(list, *e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StartsAt.Before(list[j].StartsAt) })
	return list, nil
}

func (v *Catalog) CreateEvent(_ context.Context, e *models.Event) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	e.ID = uuid.New()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	v.s.events = append(v.s.events, &cp)
	return nil
}

func (v *Catalog) UpdateEvent(_ context.Context, e *models.Event) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.events {
		if cur.ID == e.ID {
			e.CreatedAt = cur.CreatedAt
			e.UpdatedAt = time.Now()
			cp := *e
			v.s.events[i] = &cp
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "event not found")
}

func (v *Catalog) DeleteEvent(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.events {
		if cur.ID == id {
			v.s.events = append(v.s.events[:i], v.s.events[i+1:]...)
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "event not found")
}

// Categories

func (v *Catalog) ListCategories(_ context.Context) ([]models.Category, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Category, 0, len(v.s.cats))
	for _, c := range v.s.cats {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Ord != list[j].Ord {
			return list[i].Ord < list[j].Ord
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (v *Catalog) CreateCategory(_ context.Context, cat *models.Category) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	cat.ID = uuid.New()
	cat.CreatedAt = time.Now()
	cp := *cat
	v.s.cats = append(v.s.cats, &cp)
	return nil
}

func (v *Catalog) UpdateCategory(_ context.Context, cat *models.Category) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.cats {
		if cur.ID == cat.ID {
			cat.CreatedAt = cur.CreatedAt
			cp := *cat
			v.s.cats[i] = &cp
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "category not found")
}

func (v *Catalog) DeleteCategory(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.cats {
		if cur.ID == id {
			v.s.cats = append(v.s.cats[:i], v.s.cats[i+1:]...)
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "category not found")
}

// Sponsors

func (v *Catalog) ListSponsors(_ context.Context) ([]models.Sponsor, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Sponsor, 0, len(v.s.sponsors))
	for _, sp := range v.s.sponsors {
		list = append(list, *sp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Ord != list[j].Ord {
			return list[i].Ord < list[j].Ord
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (v *Catalog) CreateSponsor(_ context.Context, sp *models.Sponsor) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	sp.ID = uuid.New()
	sp.CreatedAt = time.Now()
	cp := *sp
	v.s.sponsors = append(v.s.sponsors, &cp)
	return nil
}

func (v *Catalog) UpdateSponsor(_ context.Context, sp *models.Sponsor) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.sponsors {
		if cur.ID == sp.ID {
			sp.CreatedAt = cur.CreatedAt
			cp := *sp
			v.s.sponsors[i] = &cp
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "sponsor not found")
}

func (v *Catalog) DeleteSponsor(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.sponsors {
		if cur.ID == id {
			v.s.sponsors = append(v.s.sponsors[:i], v.s.sponsors[i+1:]...)
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "sponsor not found")
}

// Speakers

func (v *Catalog) ListSpeakers(_ context.Context) ([]models.Speaker, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.Speaker, 0, len(v.s.speakers))
	for _, sp := range v.s.speakers {
		list = append(list, *sp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Ord != list[j].Ord {
			return list[i].Ord < list[j].Ord
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (v *Catalog) CreateSpeaker(_ context.Context, sp *models.Speaker) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	sp.ID = uuid.New()
	sp.CreatedAt = time.Now()
	cp := *sp
	v.s.speakers = append(v.s.speakers, &cp)
	return nil
}

func (v *Catalog) UpdateSpeaker(_ context.Context, sp *models.Speaker) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.speakers {
		if cur.ID == sp.ID {
			sp.CreatedAt = cur.CreatedAt
			cp := *sp
			v.s.speakers[i] = &cp
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "speaker not found")
}

func (v *Catalog) DeleteSpeaker(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.speakers {
		if cur.ID == id {
			v.s.speakers = append(v.s.speakers[:i], v.s.speakers[i+1:]...)
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "speaker not found")
}

// Scoring criteria

func (v *Catalog) ListCriteria(_ context.Context) ([]models.ScoringCriterion, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := make([]models.ScoringCriterion, 0, len(v.s.criteria))
	for _, cr := range v.s.criteria {
		list = append(list, *cr)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Ord != list[j].Ord {
			return list[i].Ord < list[j].Ord
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (v *Catalog) CreateCriterion(_ context.Context, cr *models.ScoringCriterion) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	cr.ID = uuid.New()
	cr.CreatedAt = time.Now()
	cp := *cr
	v.s.criteria = append(v.s.criteria, &cp)
	return nil
}

func (v *Catalog) UpdateCriterion(_ context.Context, cr *models.ScoringCriterion) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.criteria {
		if cur.ID == cr.ID {
			cr.CreatedAt = cur.CreatedAt
			cp := *cr
			v.s.criteria[i] = &cp
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "criterion not found")
}

func (v *Catalog) DeleteCriterion(_ context.Context, id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i, cur := range v.s.criteria {
		if cur.ID == id {
			v.s.criteria = append(v.s.criteria[:i], v.s.criteria[i+1:]...)
			return nil
		}
	}
	return apperr.E(apperr.NotFound, "criterion not found")
}
