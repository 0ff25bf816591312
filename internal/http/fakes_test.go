package http

import (
	"context"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"
)

// Hand-written fakes for the repository interfaces; each test wires the
// funcs it cares about.

type fakeAuthorRepo struct {
	listFn   func(ctx context.Context, p usecase.ListParams) ([]entity.Author, int, error)
	getFn    func(ctx context.Context, id int64) (entity.Author, error)
	createFn func(ctx context.Context, a *entity.Author) error
	updateFn func(ctx context.Context, a *entity.Author) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeAuthorRepo) List(ctx context.Context, p usecase.ListParams) ([]entity.Author, int, error) {
	return f.listFn(ctx, p)
}

func (f *fakeAuthorRepo) Get(ctx context.Context, id int64) (entity.Author, error) {
	return f.getFn(ctx, id)
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *entity.Author) error {
	return f.createFn(ctx, a)
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *entity.Author) error {
	return f.updateFn(ctx, a)
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeBookRepo struct {
	listFn   func(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error)
	getFn    func(ctx context.Context, id int64) (entity.Book, error)
	createFn func(ctx context.Context, b *entity.Book) error
	updateFn func(ctx context.Context, b *entity.Book) error
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeBookRepo) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	return f.listFn(ctx, p)
}

func (f *fakeBookRepo) Get(ctx context.Context, id int64) (entity.Book, error) {
	return f.getFn(ctx, id)
}

func (f *fakeBookRepo) Create(ctx context.Context, b *entity.Book) error {
	return f.createFn(ctx, b)
}

func (f *fakeBookRepo) Update(ctx context.Context, b *entity.Book) error {
	return f.updateFn(ctx, b)
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeTokenRepo struct {
	keys map[string]entity.APIToken
}

func (f *fakeTokenRepo) GetByKey(ctx context.Context, key string) (entity.APIToken, error) {
	if t, ok := f.keys[key]; ok {
		return t, nil
	}
	return entity.APIToken{}, usecase.ErrInvalidToken
}

func (f *fakeTokenRepo) Create(ctx context.Context, t *entity.APIToken) error {
	f.keys[t.Key] = *t
	return nil
}

func (f *fakeTokenRepo) List(ctx context.Context) ([]entity.APIToken, error) {
	var out []entity.APIToken
	for _, t := range f.keys {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTokenRepo) DeleteByKey(ctx context.Context, key string) error {
	if _, ok := f.keys[key]; !ok {
		return usecase.ErrInvalidToken
	}
	delete(f.keys, key)
	return nil
}
