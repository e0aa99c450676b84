package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	mockService "apparel/internal/mocks/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type designFixture struct {
	store       *memStore
	publisher   *recordingPublisher
	objectStore *mockService.MockObjectStore
	srv         usecase.DesignUsecase

	customer *entity.User
	product  *entity.ApparelProduct
}

func newDesignFixture(t *testing.T) *designFixture {
	t.Helper()

	store := newMemStore()
	publisher := &recordingPublisher{}
	objectStore := mockService.NewMockObjectStore(t)

	orders := NewOrderService(OrderServiceParams{
		TxManager: store,
		OrderRepo: memOrders{store},
		Publisher: publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	srv := NewDesignService(DesignServiceParams{
		TxManager:    store,
		DesignRepo:   memDesigns{store},
		ProductRepo:  memProducts{store},
		RuleRepo:     memPricingRules{store},
		OrderUsecase: orders,
		ObjectStore:  objectStore,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})
	srv.(*designService).now = func() time.Time { return fixedNow }

	fx := &designFixture{store: store, publisher: publisher, objectStore: objectStore, srv: srv}
	fx.customer = store.seedUser(t, "ada@example.com")
	fx.product = store.seedProduct(t, entity.SizeS, entity.SizeM, entity.SizeL)
	store.seedAddress(t, fx.customer.ID, entity.AddressKindShipping, true)
	store.seedPricingRule(t, fx.product.ID, "20.00", "8.00", "2.00", "5.00")

	return fx
}

func (fx *designFixture) aiInput() *usecase.DesignInput {
	return &usecase.DesignInput{
		ProductID:  fx.product.ID,
		DesignType: entity.DesignTypeAI,
		Prompt:     "a fox in a spacesuit",
		Size:       entity.SizeM,
		Color:      "black",
		Quantity:   3,
		IsDraft:    true,
	}
}

func (fx *designFixture) storedDesign(t *testing.T, id uuid.UUID) *entity.UserDesign {
	t.Helper()

	design, err := (memDesigns{fx.store}).FindDesignByID(context.Background(), id)
	require.NoError(t, err)

	return design
}

func TestDesignService_CreateDesign_Draft(t *testing.T) {
	fx := newDesignFixture(t)

	output, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, fx.aiInput())
	require.NoError(t, err)

	assert.Equal(t, "D-101", output.Design.Code)
	assert.True(t, output.Design.IsDraft)
	assert.Nil(t, output.Order)
	require.NotNil(t, output.Price)
	assert.Equal(t, "30.00", output.Price.PerItem.StringFixed(2))
	assert.Equal(t, "90.00", output.Price.Subtotal.StringFixed(2))
	assert.Empty(t, fx.store.orders)

	require.NotNil(t, fx.publisher.last())
	assert.Equal(t, entity.EventDesignReady, fx.publisher.last().Type)
	assert.Equal(t, "D-101", fx.publisher.last().DesignCode)
}

func TestDesignService_CreateDesign_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fx *designFixture, input *usecase.DesignInput)
		wantErr error
		details string
	}{
		{
			name:    "size not offered",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.Size = entity.SizeXXL },
			wantErr: domainerrors.ErrInvalidSize,
			details: `"XXL"`,
		},
		{
			name:    "missing size",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.Size = "" },
			wantErr: domainerrors.ErrInvalidSize,
		},
		{
			name:    "color not offered",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.Color = "mauve" },
			wantErr: domainerrors.ErrValidationFailed,
			details: "mauve",
		},
		{
			name:    "ai design without prompt",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.Prompt = "  " },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown design type",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.DesignType = "hand-drawn" },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative quantity",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.Quantity = -2 },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown product",
			mutate:  func(_ *designFixture, input *usecase.DesignInput) { input.ProductID = uuid.New() },
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name: "inactive product",
			mutate: func(fx *designFixture, _ *usecase.DesignInput) {
				fx.product.IsActive = false
				_ = (memProducts{fx.store}).UpdateProduct(context.Background(), fx.product)
			},
			wantErr: domainerrors.ErrProductInactive,
		},
		{
			name: "product without pricing rule",
			mutate: func(fx *designFixture, _ *usecase.DesignInput) {
				_ = (memPricingRules{fx.store}).DeleteByProductID(context.Background(), fx.product.ID)
			},
			wantErr: domainerrors.ErrPricingRuleMissing,
		},
		{
			name: "artwork on an ai design",
			mutate: func(_ *designFixture, input *usecase.DesignInput) {
				input.Artwork = &usecase.Upload{Filename: "fox.png", ContentType: "image/png", Data: []byte{1}}
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newDesignFixture(t)
			input := fx.aiInput()
			tt.mutate(fx, input)

			output, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.details != "" {
				assert.Contains(t, err.Error(), tt.details)
			}
			assert.Empty(t, fx.store.designs)
		})
	}
}

func TestDesignService_CreateDesign_InvalidSizeNamesSizeAndProduct(t *testing.T) {
	fx := newDesignFixture(t)
	input := fx.aiInput()
	input.Size = entity.SizeXL

	_, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, input)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidSize.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), `"XL"`)
	assert.Contains(t, appErr.Details(), fx.product.Code)
}

func TestDesignService_CreateDesign_CustomArtwork(t *testing.T) {
	fx := newDesignFixture(t)
	input := fx.aiInput()
	input.DesignType = entity.DesignTypeCustom
	input.Prompt = ""
	input.Artwork = &usecase.Upload{Filename: "Logo.PNG", ContentType: "image/png", Data: []byte("png")}

	keyPrefix := "designs/" + fx.customer.ID.String() + "/"
	fx.objectStore.EXPECT().
		Put(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, keyPrefix) && strings.HasSuffix(key, ".png")
		}), "image/png", []byte("png")).
		RunAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			return key, nil
		}).
		Once()

	output, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, input)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output.Design.Artwork, keyPrefix))
	assert.Empty(t, fx.publisher.types(), "only ai designs announce themselves")
}

func TestDesignService_CreateDesign_PlacesOrder(t *testing.T) {
	fx := newDesignFixture(t)
	input := fx.aiInput()
	input.IsDraft = false

	output, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, input)
	require.NoError(t, err)

	require.NotNil(t, output.Order)
	assert.False(t, output.Design.IsDraft)
	assert.Equal(t, "O-101", output.Order.Code)
	assert.Equal(t, "100.00", output.Order.Total.StringFixed(2))
	assert.False(t, fx.storedDesign(t, output.Design.ID).IsDraft)
	assert.Equal(t, []entity.EventType{entity.EventDesignReady, entity.EventOrderPlaced}, fx.publisher.types())
}

func TestDesignService_CreateDesign_OrderFailureKeepsDraft(t *testing.T) {
	fx := newDesignFixture(t)

	unknownAddress := uuid.New()
	input := fx.aiInput()
	input.IsDraft = false
	input.AddressID = &unknownAddress

	output, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, input)

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	require.NotNil(t, output)
	assert.Equal(t, "D-101", output.Design.Code)
	assert.True(t, output.Design.IsDraft)
	assert.Nil(t, output.Order)
	require.Len(t, fx.store.designs, 1)
	for _, design := range fx.store.designs {
		assert.True(t, design.IsDraft)
	}
	assert.Empty(t, fx.store.orders)
}

func TestDesignService_UpdateDesign(t *testing.T) {
	fx := newDesignFixture(t)
	created, err := fx.srv.CreateDesign(context.Background(), fx.customer.ID, fx.aiInput())
	require.NoError(t, err)
	designID := created.Design.ID

	t.Run("edits a draft", func(t *testing.T) {
		input := fx.aiInput()
		input.Size = entity.SizeL
		input.Quantity = 5

		updated, err := fx.srv.UpdateDesign(context.Background(), fx.customer.ID, designID, input)
		require.NoError(t, err)
		assert.Equal(t, entity.SizeL, updated.Size)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("rejects an unknown size", func(t *testing.T) {
		input := fx.aiInput()
		input.Size = entity.SizeXXL

		_, err := fx.srv.UpdateDesign(context.Background(), fx.customer.ID, designID, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSize)
		assert.Equal(t, entity.SizeL, fx.storedDesign(t, designID).Size)
	})

	t.Run("product is fixed", func(t *testing.T) {
		input := fx.aiInput()
		input.ProductID = uuid.New()

		_, err := fx.srv.UpdateDesign(context.Background(), fx.customer.ID, designID, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("other users are refused", func(t *testing.T) {
		_, err := fx.srv.UpdateDesign(context.Background(), uuid.New(), designID, fx.aiInput())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("submitted designs are frozen", func(t *testing.T) {
		_, err := fx.srv.SubmitDesign(context.Background(), fx.customer.ID, designID, nil)
		require.NoError(t, err)

		_, err = fx.srv.UpdateDesign(context.Background(), fx.customer.ID, designID, fx.aiInput())
		assert.ErrorIs(t, err, domainerrors.ErrDesignNotDraft)
	})
}

func TestDesignService_UpdateDesign_ReplacesArtwork(t *testing.T) {
	fx := newDesignFixture(t)
	design := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeCustom, 1)
	design.Artwork = "designs/old.png"
	require.NoError(t, (memDesigns{fx.store}).UpdateDesign(context.Background(), design))

	input := fx.aiInput()
	input.DesignType = entity.DesignTypeCustom
	input.Artwork = &usecase.Upload{Filename: "new.png", ContentType: "image/png", Data: []byte("new")}

	fx.objectStore.EXPECT().Put(mock.Anything, mock.Anything, "image/png", []byte("new")).Return("designs/new.png", nil).Once()
	fx.objectStore.EXPECT().Delete(mock.Anything, "designs/old.png").Return(nil).Once()

	updated, err := fx.srv.UpdateDesign(context.Background(), fx.customer.ID, design.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "designs/new.png", updated.Artwork)
}

func TestDesignService_GetArtwork(t *testing.T) {
	fx := newDesignFixture(t)
	ctx := context.Background()
	design := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeCustom, 1)

	_, err := fx.srv.GetArtwork(ctx, fx.customer.ID, design.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound, "no artwork uploaded yet")

	design.Artwork = "designs/art.png"
	require.NoError(t, (memDesigns{fx.store}).UpdateDesign(ctx, design))
	fx.objectStore.EXPECT().Get(mock.Anything, "designs/art.png").Return([]byte("png"), nil).Once()

	data, err := fx.srv.GetArtwork(ctx, fx.customer.ID, design.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = fx.srv.GetArtwork(ctx, uuid.New(), design.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDesignService_SubmitDesign(t *testing.T) {
	fx := newDesignFixture(t)
	design := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeAI, 1)

	output, err := fx.srv.SubmitDesign(context.Background(), fx.customer.ID, design.ID, &usecase.SubmitDesignInput{Quantity: 3})
	require.NoError(t, err)
	assert.False(t, output.Design.IsDraft)
	assert.Equal(t, 3, output.Design.Quantity)
	assert.Equal(t, "100.00", output.Order.Total.StringFixed(2))

	_, err = fx.srv.SubmitDesign(context.Background(), fx.customer.ID, design.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDesignNotDraft, "a design is ordered once")
	assert.Len(t, fx.store.orders, 1)
}

func TestDesignService_DeleteDesign(t *testing.T) {
	fx := newDesignFixture(t)
	draft := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeCustom, 1)
	draft.Artwork = "designs/art.png"
	require.NoError(t, (memDesigns{fx.store}).UpdateDesign(context.Background(), draft))

	fx.objectStore.EXPECT().Delete(mock.Anything, "designs/art.png").Return(nil).Once()

	require.NoError(t, fx.srv.DeleteDesign(context.Background(), fx.customer.ID, draft.ID))
	_, err := fx.srv.GetDesign(context.Background(), fx.customer.ID, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDesignNotFound)

	submitted := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeAI, 1)
	_, err = fx.srv.SubmitDesign(context.Background(), fx.customer.ID, submitted.ID, nil)
	require.NoError(t, err)

	err = fx.srv.DeleteDesign(context.Background(), fx.customer.ID, submitted.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDesignNotDraft)
}

func TestDesignService_ListDesigns(t *testing.T) {
	fx := newDesignFixture(t)
	older := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeAI, 1)
	newer := fx.store.seedDesign(t, fx.customer.ID, fx.product.ID, entity.DesignTypeAI, 1)
	fx.store.seedDesign(t, uuid.New(), fx.product.ID, entity.DesignTypeAI, 1)

	designs, err := fx.srv.ListDesigns(context.Background(), fx.customer.ID)
	require.NoError(t, err)
	require.Len(t, designs, 2)
	assert.Equal(t, newer.ID, designs[0].ID)
	assert.Equal(t, older.ID, designs[1].ID)
}
