package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/pricing"
	"apparel/internal/domain/repository"
	"apparel/internal/domain/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// designService implements the DesignUsecase interface.
type designService struct {
	txManager    repository.TransactionManager
	designRepo   repository.DesignRepository
	productRepo  repository.ProductRepository
	ruleRepo     repository.PricingRuleRepository
	orderUsecase usecase.OrderUsecase
	objectStore  service.ObjectStore
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// DesignServiceParams holds dependencies for DesignService, injected by Fx.
type DesignServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DesignRepo   repository.DesignRepository
	ProductRepo  repository.ProductRepository
	RuleRepo     repository.PricingRuleRepository
	OrderUsecase usecase.OrderUsecase
	ObjectStore  service.ObjectStore
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewDesignService is the constructor for designService.
func NewDesignService(params DesignServiceParams) usecase.DesignUsecase {
	return &designService{
		txManager:    params.TxManager,
		designRepo:   params.DesignRepo,
		productRepo:  params.ProductRepo,
		ruleRepo:     params.RuleRepo,
		orderUsecase: params.OrderUsecase,
		objectStore:  params.ObjectStore,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *designService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDesign saves a design as a draft. A design submitted as non-draft is
// then ordered right away; if placing the order fails the draft is kept so
// the user can submit it again, and it is returned with the error.
func (srv *designService) CreateDesign(ctx context.Context, userID uuid.UUID, input *usecase.DesignInput) (*usecase.DesignOutput, error) {
	srv.log(ctx).Info("Creating design", slog.Any("userID", userID), slog.Any("productID", input.ProductID))

	design := &entity.UserDesign{
		UserID:    userID,
		ProductID: input.ProductID,
		IsDraft:   true,
	}
	applyDesignInput(design, input)

	price, err := srv.validateDesign(ctx, design)
	if err != nil {
		return nil, err
	}

	if input.Artwork != nil {
		key, err := srv.storeArtwork(ctx, userID, design.DesignType, input.Artwork)
		if err != nil {
			return nil, err
		}
		design.Artwork = key
	}

	err = executeWithIdentifierRetry(ctx, srv.txManager, srv.log(ctx), func(repoFactory repository.RepositoryFactory) error {
		code, err := repoFactory.NewIdentifierRepository().Allocate(ctx, identifier.PrefixDesign)
		if err != nil {
			return errors.Wrap(err, "failed to allocate design code")
		}
		design.Code = code

		return repoFactory.NewDesignRepository().CreateDesign(ctx, design)
	})
	if err != nil {
		srv.discardArtwork(ctx, design.Artwork)

		return nil, errors.Wrap(err, "failed to create design")
	}

	if design.DesignType == entity.DesignTypeAI {
		event := entity.NewEvent(entity.EventDesignReady, userID, srv.now())
		event.DesignCode = design.Code
		publishEvent(ctx, srv.publisher, srv.log(ctx), event)
	}

	output := &usecase.DesignOutput{Design: design, Price: price}
	if input.IsDraft {
		return output, nil
	}

	order, err := srv.orderUsecase.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:       userID,
		DesignID:     design.ID,
		AddressID:    input.AddressID,
		Quantity:     design.Quantity,
		RequireDraft: true,
	})
	if err != nil {
		srv.log(ctx).Warn("Design saved as draft, order not placed", slog.String("designCode", design.Code), slog.Any("error", err))

		return output, errors.Wrap(err, "design saved as draft but the order could not be placed")
	}

	design.IsDraft = false
	output.Order = order

	return output, nil
}

func (srv *designService) ListDesigns(ctx context.Context, userID uuid.UUID) ([]*entity.UserDesign, error) {
	designs, err := srv.designRepo.FindDesignsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list designs")
	}

	return designs, nil
}

func (srv *designService) GetDesign(ctx context.Context, userID, designID uuid.UUID) (*entity.UserDesign, error) {
	return srv.findOwned(ctx, userID, designID)
}

// UpdateDesign edits a draft. The product of a design is fixed once created.
func (srv *designService) UpdateDesign(ctx context.Context, userID, designID uuid.UUID, input *usecase.DesignInput) (*entity.UserDesign, error) {
	design, err := srv.findOwned(ctx, userID, designID)
	if err != nil {
		return nil, err
	}
	if !design.IsDraft {
		return nil, domainerrors.ErrDesignNotDraft
	}
	if input.ProductID != uuid.Nil && input.ProductID != design.ProductID {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the product of a design cannot be changed")
	}

	applyDesignInput(design, input)
	if _, err := srv.validateDesign(ctx, design); err != nil {
		return nil, err
	}

	previousArtwork := design.Artwork
	if input.Artwork != nil {
		key, err := srv.storeArtwork(ctx, userID, design.DesignType, input.Artwork)
		if err != nil {
			return nil, err
		}
		design.Artwork = key
	}

	if err := srv.designRepo.UpdateDesign(ctx, design); err != nil {
		if design.Artwork != previousArtwork {
			srv.discardArtwork(ctx, design.Artwork)
		}

		return nil, translateDesignError(err)
	}
	if design.Artwork != previousArtwork {
		srv.discardArtwork(ctx, previousArtwork)
	}

	return design, nil
}

// SubmitDesign orders a draft design.
func (srv *designService) SubmitDesign(ctx context.Context, userID, designID uuid.UUID, input *usecase.SubmitDesignInput) (*usecase.DesignOutput, error) {
	if input == nil {
		input = &usecase.SubmitDesignInput{}
	}

	order, err := srv.orderUsecase.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:       userID,
		DesignID:     designID,
		AddressID:    input.AddressID,
		Quantity:     input.Quantity,
		RequireDraft: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit design")
	}

	design, err := srv.findOwned(ctx, userID, designID)
	if err != nil {
		return nil, err
	}

	return &usecase.DesignOutput{Design: design, Order: order}, nil
}

// DeleteDesign removes a draft and its artwork.
func (srv *designService) DeleteDesign(ctx context.Context, userID, designID uuid.UUID) error {
	design, err := srv.findOwned(ctx, userID, designID)
	if err != nil {
		return err
	}
	if !design.IsDraft {
		return domainerrors.ErrDesignNotDraft
	}

	if err := srv.designRepo.DeleteDesign(ctx, design.ID); err != nil {
		return translateDesignError(err)
	}
	srv.discardArtwork(ctx, design.Artwork)

	return nil
}

func (srv *designService) GetArtwork(ctx context.Context, userID, designID uuid.UUID) ([]byte, error) {
	design, err := srv.findOwned(ctx, userID, designID)
	if err != nil {
		return nil, err
	}
	if design.Artwork == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("design has no artwork")
	}

	data, err := srv.objectStore.Get(ctx, design.Artwork)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read artwork of design %s", design.Code)
	}

	return data, nil
}

func (srv *designService) findOwned(ctx context.Context, userID, designID uuid.UUID) (*entity.UserDesign, error) {
	design, err := srv.designRepo.FindDesignByID(ctx, designID)
	if err != nil {
		return nil, translateDesignError(err)
	}
	if design.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "design does not belong to user")
	}

	return design, nil
}

// validateDesign checks the design against its product: the product must be
// on sale, offer the chosen size and color, and have a pricing rule. It
// returns the price of ordering the design as it stands.
func (srv *designService) validateDesign(ctx context.Context, design *entity.UserDesign) (*usecase.DesignPrice, error) {
	if !design.DesignType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown design type %q", design.DesignType))
	}
	if design.DesignType == entity.DesignTypeAI && strings.TrimSpace(design.Prompt) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prompt is required for ai designs")
	}
	if design.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity must be at least 1, got %d", design.Quantity))
	}

	product, err := srv.productRepo.FindProductByID(ctx, design.ProductID)
	if err != nil {
		return nil, translateProductError(err)
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductInactive
	}
	if !product.HasSize(design.Size) {
		return nil, domainerrors.ErrInvalidSize.WithDetails(fmt.Sprintf("size %q is not offered for product %s", design.Size, product.Code))
	}
	if design.Color != "" && len(product.ColorOptions) > 0 && !slices.Contains(product.ColorOptions, design.Color) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("color %q is not offered for product %s", design.Color, product.Code))
	}

	rule, err := srv.ruleRepo.FindByProductID(ctx, product.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return nil, domainerrors.ErrPricingRuleMissing.WithDetails("product " + product.Code)
		}

		return nil, errors.Wrap(err, "failed to load pricing rule")
	}

	breakdown, err := pricing.PriceOrder(pricing.Input{DesignType: design.DesignType, Quantity: design.Quantity}, rule)
	if err != nil {
		return nil, err
	}

	return &usecase.DesignPrice{PerItem: breakdown.PerItem, Subtotal: breakdown.Subtotal}, nil
}

func (srv *designService) storeArtwork(ctx context.Context, userID uuid.UUID, designType entity.DesignType, upload *usecase.Upload) (string, error) {
	if designType != entity.DesignTypeCustom {
		return "", domainerrors.ErrValidationFailed.WithDetails("artwork can only be uploaded for custom designs")
	}
	if len(upload.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("artwork is empty")
	}

	key := fmt.Sprintf("designs/%s/%s%s", userID, uuid.NewString(), strings.ToLower(path.Ext(upload.Filename)))

	stored, err := srv.objectStore.Put(ctx, key, upload.ContentType, upload.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store artwork")
	}

	return stored, nil
}

func (srv *designService) discardArtwork(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := srv.objectStore.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete artwork", slog.String("key", key), slog.Any("error", err))
	}
}

func applyDesignInput(design *entity.UserDesign, input *usecase.DesignInput) {
	if input.DesignType != "" {
		design.DesignType = input.DesignType
	}
	if input.Size != "" {
		design.Size = input.Size
	}
	design.Prompt = input.Prompt
	design.Font = input.Font
	design.Style = input.Style
	design.Color = input.Color

	switch {
	case input.Quantity != 0:
		design.Quantity = input.Quantity
	case design.Quantity == 0:
		design.Quantity = 1
	}
}

func translateDesignError(err error) error {
	if errors.Is(err, repository.ErrDesignNotFound) {
		return domainerrors.ErrDesignNotFound
	}

	return errors.Wrap(err, "design repository error")
}
