// Package server exposes the expense hub over gRPC.
package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
)

// userFromContext resolves the bearer token in the request metadata to its
// user account.
func userFromContext(ctx context.Context, authSvc *auth.Service) (*entity.User, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, common.UnauthenticatedError("missing request metadata")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, common.UnauthenticatedError("missing authorization token")
	}
	token := strings.TrimPrefix(values[0], "Bearer ")
	user, err := authSvc.Authenticate(ctx, token)
	if err != nil {
		return nil, common.UnauthenticatedError("invalid session token")
	}
	return user, nil
}

func toPBUser(u *entity.User) *v1.User {
	return &v1.User{
		Id:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		AvatarUrl:    u.AvatarURL,
		BaseCurrency: u.BaseCurrency,
		CreatedAt:    u.CreatedAt.Format(timeFormat),
		UpdatedAt:    u.UpdatedAt.Format(timeFormat),
	}
}

func toPBExpense(e *entity.Expense) *v1.Expense {
	out := &v1.Expense{
		Id:           e.ID.String(),
		UserId:       e.UserID.String(),
		TxDate:       e.TxDate.Format(dateFormat),
		Vendor:       e.Vendor,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		Category:     string(e.Category),
		Location:     e.Location,
		Details:      e.Details,
		ImagePath:    e.ImagePath,
		Status:       string(e.Status),
		IsManual:     e.IsManual,
		CreatedAt:    e.CreatedAt.Format(timeFormat),
		UpdatedAt:    e.UpdatedAt.Format(timeFormat),
	}
	out.ConvertedAmount = e.ConvertedAmount
	out.BaseCurrencyAtTime = e.BaseCurrencyAtTime
	for _, item := range e.Items {
		out.Items = append(out.Items, &v1.LineItem{
			Quantity:  int32(item.Quantity),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
		})
	}
	if e.Metadata != nil {
		out.ManualMetadata = toPBManualMetadata(e.Metadata)
	}
	return out
}

func toPBManualMetadata(m *entity.ManualMetadata) *v1.ManualMetadata {
	return &v1.ManualMetadata{
		Address:          m.Address,
		Phone:            m.Phone,
		Website:          m.Website,
		BillNo:           m.BillNo,
		TableNo:          m.TableNo,
		Steward:          m.Steward,
		Cover:            m.Cover,
		Session:          m.Session,
		Gstin:            m.GSTIN,
		Cashier:          m.Cashier,
		BillTime:         m.BillTime,
		ServiceChargePct: m.ServiceChargePct,
		CgstPct:          m.CGSTPct,
		SgstPct:          m.SGSTPct,
	}
}

func fromPBItems(items []*v1.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.LineItem{
			Quantity:  int(item.GetQuantity()),
			Name:      item.GetName(),
			UnitPrice: item.GetUnitPrice(),
		})
	}
	return out
}

func fromPBManualMetadata(m *v1.ManualMetadata) *entity.ManualMetadata {
	if m == nil {
		return nil
	}
	return &entity.ManualMetadata{
		Address:          m.GetAddress(),
		Phone:            m.GetPhone(),
		Website:          m.GetWebsite(),
		BillNo:           m.GetBillNo(),
		TableNo:          m.GetTableNo(),
		Steward:          m.GetSteward(),
		Cover:            m.GetCover(),
		Session:          m.GetSession(),
		GSTIN:            m.GetGstin(),
		Cashier:          m.GetCashier(),
		BillTime:         m.GetBillTime(),
		ServiceChargePct: m.GetServiceChargePct(),
		CGSTPct:          m.GetCgstPct(),
		SGSTPct:          m.GetSgstPct(),
	}
}

const (
	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02T15:04:05Z07:00"
)
