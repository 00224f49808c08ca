package service_test

import (
	"testing"
	"time"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func status(s entity.OrderStatus) *entity.OrderStatus { return &s }

func strptr(s string) *string { return &s }

func decptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func isoToday() string {
	return time.Now().Format("2006-01-02")
}

func TestUpdateStatusInProgressStampsStartDateOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-1")
	order := seedOrder(t, db, user.ID, project.ID)

	require.NoError(t, svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{Status: status(entity.OrderInProgress)}))

	got, err := svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, isoToday(), *got.StartDate)
	assert.Equal(t, entity.OrderInProgress, got.Status)

	// A second IN_PROGRESS update leaves the stamp untouched.
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).
		Update("start_date", "2024-02-02").Error)
	require.NoError(t, svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{Status: status(entity.OrderInProgress)}))

	got, err = svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02", *got.StartDate)
}

func TestUpdateStatusCompletedStampsEndDateAndMarksProjectDone(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-2")
	order := seedOrder(t, db, user.ID, project.ID)

	require.NoError(t, svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{Status: status(entity.OrderCompleted)}))

	got, err := svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, isoToday(), *got.EndDate)

	var updatedProject entity.Project
	require.NoError(t, db.First(&updatedProject, project.ID).Error)
	assert.True(t, updatedProject.IsDone)
}

func TestUpdateStatusPaidStampsPaymentDate(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-3")
	order := seedOrder(t, db, user.ID, project.ID)

	require.NoError(t, svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{Status: status(entity.OrderPaid)}))

	got, err := svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, isoToday(), *got.PaymentDate)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
}

func TestUpdateAlwaysStampsUpdatedDate(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-4")
	order := seedOrder(t, db, user.ID, project.ID)

	require.NoError(t, svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{StartPrice: decptr("1000.50")}))

	got, err := svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedDate)
	assert.Equal(t, isoToday(), *got.UpdatedDate)
	require.NotNil(t, got.StartPrice)
	assert.True(t, got.StartPrice.Equal(decimal.RequireFromString("1000.50")))
}

func TestUpdateRejectsNegativeFinalPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-5")
	order := seedOrder(t, db, user.ID, project.ID)

	err := svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{
		FinalPrice: decptr("-1"),
		Status:     status(entity.OrderPaid),
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	err = svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{
		FinalPrice: decptr("100"),
		StartPrice: decptr("-5"),
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	// Rejection happens before persistence: no date stamps, no update stamp.
	got, err := svc.Get(ctxBg(), order.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UpdatedDate)
	assert.Nil(t, got.PaymentDate)
}

func TestUpdateRejectsFutureDates(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-6")
	order := seedOrder(t, db, user.ID, project.ID)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	for _, in := range []service.UpdateOrderInput{
		{StartDate: strptr(tomorrow)},
		{EndDate: strptr(tomorrow)},
		{PaymentDate: strptr(tomorrow)},
	} {
		assert.ErrorIs(t, svc.Update(ctxBg(), order.ID, in), service.ErrValidation)
	}
}

func TestUpdateRejectsInvertedDateRange(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-7")
	order := seedOrder(t, db, user.ID, project.ID)

	err := svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{
		StartDate: strptr("2024-03-10"),
		EndDate:   strptr("2024-03-01"),
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateRejectsMalformedDate(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-8")
	order := seedOrder(t, db, user.ID, project.ID)

	err := svc.Update(ctxBg(), order.ID, service.UpdateOrderInput{StartDate: strptr("10.03.2024")})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateUnknownOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)

	err := svc.Update(ctxBg(), 404, service.UpdateOrderInput{Status: status(entity.OrderPaid)})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetAllDenormalizesUserAndProject(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-9")
	seedOrder(t, db, user.ID, project.ID)

	views, err := svc.GetAll(ctxBg(), repository.Filter{"id_user": user.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, user.Email, views[0].User.Email)
	assert.Equal(t, project.Slug, views[0].Project.Slug)
	assert.Equal(t, project.ID, views[0].Project.ID)
}

func TestGetAllSurfacesDanglingReference(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-10")
	order := seedOrder(t, db, user.ID, project.ID)

	require.NoError(t, db.Delete(&entity.User{}, user.ID).Error)

	_, err := svc.GetAll(ctxBg(), repository.Filter{"id": order.ID})
	assert.ErrorIs(t, err, service.ErrFailed)
}

func TestCreateOpensPendingOrderForCaller(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderService(db)
	user := seedUser(t, db, "u@example.com", entity.RoleUser)
	project := seedProject(t, db, "tower-11")

	order, err := svc.Create(ctxBg(), user.ID, project.ID)
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, isoToday(), order.CreatedDate)
	assert.Equal(t, user.ID, order.IDUser)
}
