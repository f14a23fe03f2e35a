package record

import (
	"context"

	"github.com/HuXin0817/fabric-claims/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ReportRecodeCollectionName = "report_recode"

var _ ReportRecodeModel = (*customReportRecodeModel)(nil)

type (
	// ReportRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customReportRecodeModel.
	ReportRecodeModel interface {
		reportRecodeModel
		InsertMany(ctx context.Context, data ...*ReportRecode) error
		FindLatestByDigest(ctx context.Context, digest message.Digest) (*ReportRecode, error)
	}

	customReportRecodeModel struct {
		*defaultReportRecodeModel
	}
)

// NewReportRecodeModel returns a model for the mongo.
func NewReportRecodeModel(url, db string) ReportRecodeModel {
	conn := mon.MustNewModel(url, db, ReportRecodeCollectionName)
	return &customReportRecodeModel{
		defaultReportRecodeModel: newDefaultReportRecodeModel(conn),
	}
}

func (m *customReportRecodeModel) InsertMany(ctx context.Context, data ...*ReportRecode) error {
	for _, d := range data {
		if err := m.Insert(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (m *customReportRecodeModel) FindLatestByDigest(ctx context.Context, digest message.Digest) (*ReportRecode, error) {
	var data ReportRecode

	opts := options.FindOne().SetSort(bson.D{{Key: "createAt", Value: -1}})
	err := m.conn.FindOne(ctx, &data, bson.M{"digest": digest}, opts)
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}
