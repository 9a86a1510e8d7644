package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	qMocks "github.com/flixe/goapi/service/query/mocks"
)

func TestFind(t *testing.T) {
	req := require.New(t)
	q := &qMocks.Mongo{}
	defer q.AssertExpectations(t)

	sender := domain.Address("0xabc0000000000000000000000000000000000001")
	method := "listNFTForSale"
	q.On("Search", mock.Anything, domain.TableTransactions, 10, defaultLimit, "-settledAt",
		bson.M{"sender": sender, "method": method}, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(6).(*[]*journal.Tx)
			*res = append(*res, &journal.Tx{Hash: "0x01", Method: method})
		}).Return(nil).Once()

	res, err := New(q).Find(ctx.Background(), journal.FindOptions{Sender: &sender, Method: &method, Offset: 10})
	req.NoError(err)
	req.Len(res, 1)
	req.Equal(domain.TxHash("0x01"), res[0].Hash)
}

func TestCount(t *testing.T) {
	req := require.New(t)
	q := &qMocks.Mongo{}
	defer q.AssertExpectations(t)

	sender := domain.Address("0xabc0000000000000000000000000000000000001")
	q.On("Count", mock.Anything, domain.TableTransactions, bson.M{"sender": sender}).Return(3, nil).Once()

	n, err := New(q).Count(ctx.Background(), journal.FindOptions{Sender: &sender, Limit: 5})
	req.NoError(err)
	req.Equal(3, n)
}

func TestInsertFailure(t *testing.T) {
	q := &qMocks.Mongo{}
	defer q.AssertExpectations(t)

	q.On("Insert", mock.Anything, domain.TableTransactions, mock.Anything).Return(errors.New("duplicate key")).Once()

	err := New(q).Insert(ctx.Background(), &journal.Tx{Hash: "0x01"})
	require.Error(t, err)
}
