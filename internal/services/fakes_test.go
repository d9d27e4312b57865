package services_test

import (
	"context"
	"fmt"
	"sync"

	"jobhub_backend/internal/email"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory фейки репозиториев для юнит-тестов сервисов.
// Повторяют контракт настоящих реализаций: те же sentinel-ошибки,
// те же правила видимости заблокированных вакансий.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == models.UserRoleAdmin {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) FindByOtp(_ context.Context, code string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if code == "" {
		return nil, repositories.ErrUserNotFound
	}
	for _, u := range r.users {
		if u.Otp == code {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindOtpVerified(_ context.Context) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.OtpVerified {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id string, includeBlocked bool) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	if j.Status == models.JobStatusBlocked && !includeBlocked {
		return nil, repositories.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *fakeJobRepo) FindAll(_ context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if j.Status == models.JobStatusBlocked {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByOwner(_ context.Context, userID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Job, 0)
	for _, j := range r.jobs {
		if j.CreatedBy == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) UpdateStatus(_ context.Context, id string, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.JobApplication)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.UserID == app.UserID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByJob(_ context.Context, jobID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.JobApplication, 0)
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByUser(_ context.Context, userID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.JobApplication, 0)
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) CountByJob(_ context.Context, jobID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) ExistsByJobAndUser(_ context.Context, jobID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) Update(_ context.Context, app *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	clone := *app
	r.apps[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

type fakeFavoriteRepo struct {
	mu        sync.Mutex
	favorites map[string]*models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*models.Favorite)}
}

func favoriteKey(jobID, userID string) string {
	return fmt.Sprintf("%s/%s", jobID, userID)
}

func (r *fakeFavoriteRepo) Create(_ context.Context, fav *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey(fav.JobID, fav.UserID)
	if _, ok := r.favorites[key]; ok {
		return repositories.ErrDuplicateFavorite
	}
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}
	clone := *fav
	r.favorites[key] = &clone
	return nil
}

func (r *fakeFavoriteRepo) FindByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Favorite, 0)
	for _, f := range r.favorites {
		if f.UserID == userID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, jobID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[favoriteKey(jobID, userID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, jobID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := favoriteKey(jobID, userID)
	if _, ok := r.favorites[key]; !ok {
		return repositories.ErrFavoriteNotFound
	}
	delete(r.favorites, key)
	return nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*models.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*models.Report)}
}

func (r *fakeReportRepo) Create(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id string) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, repositories.ErrReportNotFound
	}
	clone := *rep
	return &clone, nil
}

func (r *fakeReportRepo) FindByJob(_ context.Context, jobID string) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Report, 0)
	for _, rep := range r.reports {
		if rep.JobID == jobID {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindByReporter(_ context.Context, userID string) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Report, 0)
	for _, rep := range r.reports {
		if rep.ReportedBy == userID {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) FindPending(_ context.Context) ([]models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Report, 0)
	for _, rep := range r.reports {
		if rep.Status == models.ReportStatusPending {
			out = append(out, *rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) Update(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[report.ID]; !ok {
		return repositories.ErrReportNotFound
	}
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

// fakeEmailProvider записывает отправленные OTP, опционально фейлит отправку
type fakeEmailProvider struct {
	mu       sync.Mutex
	sent     []sentOtp
	failNext error
}

type sentOtp struct {
	To   string
	Code string
}

func (p *fakeEmailProvider) Send(_ *email.Email) error { return nil }

func (p *fakeEmailProvider) SendWithTemplate(_ string, _ email.TemplateData, _ *email.Email) error {
	return nil
}

func (p *fakeEmailProvider) Validate() error { return nil }

func (p *fakeEmailProvider) Close() error { return nil }

func (p *fakeEmailProvider) SendPasswordResetOtp(to, code string, _ int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext != nil {
		err := p.failNext
		p.failNext = nil
		return err
	}
	p.sent = append(p.sent, sentOtp{To: to, Code: code})
	return nil
}

func (p *fakeEmailProvider) lastSent() (sentOtp, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.sent) == 0 {
		return sentOtp{}, false
	}
	return p.sent[len(p.sent)-1], true
}
