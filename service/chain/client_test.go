package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	bAbi "github.com/flixe/goapi/base/abi"
	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	"github.com/flixe/goapi/domain/mocks"
	chainMocks "github.com/flixe/goapi/service/chain/recordermocks"
	"github.com/flixe/goapi/service/wallet"
)

type revertData struct {
	msg  string
	data string
}

func (e *revertData) Error() string          { return e.msg }
func (e *revertData) ErrorData() interface{} { return e.data }

type recorderFunc func(ctx bCtx.Ctx, tx *journal.Tx) error

func (f recorderFunc) Record(ctx bCtx.Ctx, tx *journal.Tx) error { return f(ctx, tx) }

type clientSuite struct {
	suite.Suite

	ctx      bCtx.Ctx
	eth      *mocks.EthClientRepo
	key      *ecdsa.PrivateKey
	from     common.Address
	provider wallet.Provider
	recorded []*journal.Tx
	im       Client
}

func TestClient(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	var err error
	s.ctx = bCtx.Background()
	s.eth = &mocks.EthClientRepo{}
	s.key, err = crypto.GenerateKey()
	s.Require().NoError(err)
	s.from = crypto.PubkeyToAddress(s.key.PublicKey)
	s.provider = wallet.NewKeyed(s.key)
	s.recorded = nil

	s.im, err = New(s.eth, ClientCfg{ChainId: 365, ReceiptPoll: time.Millisecond},
		WithRecorder(recorderFunc(func(ctx bCtx.Ctx, tx *journal.Tx) error {
			s.recorded = append(s.recorded, tx)
			return nil
		})))
	s.Require().NoError(err)
}

func (s *clientSuite) TearDownTest() {
	s.eth.AssertExpectations(s.T())
}

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e9))
}

func (s *clientSuite) unlistParams() SendParams {
	return SendParams{
		Contract: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		ABI:      bAbi.MarketplaceABI,
		Method:   "unlistNFT",
		Args:     []interface{}{big.NewInt(3)},
	}
}

func (s *clientSuite) TestAdjustedGasPriceUsesMinimum() {
	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(1), nil).Once()
	p, err := s.im.AdjustedGasPrice(s.ctx)
	s.NoError(err)
	s.Equal(gwei(2), p)
}

func (s *clientSuite) TestAdjustedGasPriceKeepsNetworkPrice() {
	network := new(big.Int).Add(gwei(2), big.NewInt(1))
	s.eth.On("SuggestGasPrice", mock.Anything).Return(network, nil).Once()
	p, err := s.im.AdjustedGasPrice(s.ctx)
	s.NoError(err)
	s.Equal(network, p)
}

func (s *clientSuite) TestAdjustedGasPriceFails() {
	s.eth.On("SuggestGasPrice", mock.Anything).Return(nil, errors.New("rpc down")).Once()
	_, err := s.im.AdjustedGasPrice(s.ctx)
	s.Error(err)
}

func (s *clientSuite) TestSendSuccess() {
	p := s.unlistParams()
	var sent *types.Transaction

	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(1), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(7), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.AnythingOfType("*types.Transaction")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(*types.Transaction) }).
		Return(nil).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.AnythingOfType("common.Hash")).
		Return(nil, ethereum.NotFound).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.AnythingOfType("common.Hash")).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(11), GasUsed: 50000}, nil).Once()

	receipt, err := s.im.Send(s.ctx, s.provider, p)
	s.Require().NoError(err)
	s.Equal(types.ReceiptStatusSuccessful, receipt.Status)

	s.Require().NotNil(sent)
	s.Equal(uint64(7), sent.Nonce())
	s.Equal(gwei(2), sent.GasPrice())
	s.Equal(DefaultGasLimit, sent.Gas())
	s.Equal(p.Contract, *sent.To())
	s.Equal(0, sent.Value().Sign())
	s.Equal(bAbi.MarketplaceABI.Methods["unlistNFT"].ID, sent.Data()[:4])

	s.Require().Len(s.recorded, 1)
	rec := s.recorded[0]
	s.Equal(domain.TxHash(sent.Hash().Hex()), rec.Hash)
	s.Equal("unlistNFT", rec.Method)
	s.Equal(domain.AddressFrom(s.from), rec.Sender)
	s.Equal(journal.TxStatusSuccess, rec.Status)
	s.Equal(domain.BlockNumber(11), rec.BlockNumber)
	s.Equal(uint64(50000), rec.GasUsed)
}

func (s *clientSuite) TestSendWithValueAndGasLimit() {
	p := SendParams{
		Contract: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
		ABI:      bAbi.MarketplaceABI,
		Method:   "purchaseNFT",
		Args:     []interface{}{big.NewInt(3)},
		Value:    big.NewInt(12345),
		GasLimit: 7000000,
	}
	network := gwei(5)

	s.eth.On("SuggestGasPrice", mock.Anything).Return(network, nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(0), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.MatchedBy(func(tx *types.Transaction) bool {
		return tx.Value().Cmp(big.NewInt(12345)) == 0 && tx.Gas() == 7000000 && tx.GasPrice().Cmp(network) == 0
	})).Return(nil).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.Anything).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}, nil).Once()

	_, err := s.im.Send(s.ctx, s.provider, p)
	s.NoError(err)
}

func (s *clientSuite) TestSendNoAccount() {
	_, err := s.im.Send(s.ctx, wallet.NewKeyed(nil), s.unlistParams())
	s.ErrorIs(err, domain.ErrNoAccount)

	_, err = s.im.Send(s.ctx, nil, s.unlistParams())
	s.ErrorIs(err, domain.ErrNoAccount)
	s.Empty(s.recorded)
}

func (s *clientSuite) TestSendPackFails() {
	p := s.unlistParams()
	p.Args = []interface{}{"not a number"}
	_, err := s.im.Send(s.ctx, s.provider, p)
	s.Error(err)
}

func (s *clientSuite) TestSendSubmissionFailureIsNotRetried() {
	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(3), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(1), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.Anything).Return(errors.New("insufficient funds for gas")).Once()

	_, err := s.im.Send(s.ctx, s.provider, s.unlistParams())
	s.Error(err)
	s.Contains(err.Error(), "insufficient funds")
	s.eth.AssertNumberOfCalls(s.T(), "SendTransaction", 1)
	s.eth.AssertNotCalled(s.T(), "TransactionReceipt", mock.Anything, mock.Anything)
	s.Empty(s.recorded)
}

func (s *clientSuite) TestSendReverted() {
	stringTy, err := abi.NewType("string", "", nil)
	s.Require().NoError(err)
	packed, err := abi.Arguments{{Type: stringTy}}.Pack("Not the owner")
	s.Require().NoError(err)
	revert := append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)

	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(3), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(4), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.Anything).Return(nil).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.Anything).
		Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(20)}, nil).Once()
	s.eth.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.From == s.from
	}), big.NewInt(20)).Return(nil, &revertData{msg: "execution reverted", data: hexutil.Encode(revert)}).Once()

	receipt, err := s.im.Send(s.ctx, s.provider, s.unlistParams())
	s.Require().Error(err)
	s.NotNil(receipt)
	s.ErrorIs(err, domain.ErrTransactionReverted)

	var reverted *TransactionRevertedError
	s.Require().ErrorAs(err, &reverted)
	s.Equal("Not the owner", reverted.Reason)
	s.Equal("unlistNFT", reverted.Method)

	s.Require().Len(s.recorded, 1)
	s.Equal(journal.TxStatusReverted, s.recorded[0].Status)
	s.Equal("Not the owner", s.recorded[0].Reason)
}

func (s *clientSuite) TestSendCanceledWhileWaiting() {
	ctx, cancel := bCtx.WithCancel(s.ctx)
	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(3), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(4), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.Anything).Return(nil).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, ethereum.NotFound)

	_, err := s.im.Send(ctx, s.provider, s.unlistParams())
	s.ErrorIs(err, ctx.Err())
	s.Empty(s.recorded)
}

func (s *clientSuite) TestCall() {
	out, err := bAbi.MarketplaceABI.Methods["getAuctionPrice"].Outputs.Pack(big.NewInt(99))
	s.Require().NoError(err)
	contract := common.HexToAddress("0x00000000000000000000000000000000000000a1")

	s.eth.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return *msg.To == contract
	}), (*big.Int)(nil)).Return(out, nil).Once()

	res, err := s.im.Call(s.ctx, CallParams{
		Contract: contract,
		ABI:      bAbi.MarketplaceABI,
		Method:   "getAuctionPrice",
		Args:     []interface{}{big.NewInt(3)},
	})
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(big.NewInt(99), res[0])
}

func (s *clientSuite) TestCallFails() {
	s.eth.On("CallContract", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	_, err := s.im.Call(s.ctx, CallParams{ABI: bAbi.MarketplaceABI, Method: "discountInterval"})
	s.Error(err)
}

func (s *clientSuite) TestChainId() {
	s.Equal(big.NewInt(365), s.im.ChainId())
}

func TestReasonFromError(t *testing.T) {
	req := require.New(t)
	req.Equal("Loan not active", ReasonFromError(errors.New("execution reverted: Loan not active")))
	req.Equal("out of gas", ReasonFromError(errors.New("out of gas")))
	req.Equal("execution reverted", ReasonFromError(&revertData{msg: "execution reverted", data: "0xzz"}))
}

func TestNewRejectsBadMinGasPrice(t *testing.T) {
	_, err := New(&mocks.EthClientRepo{}, ClientCfg{MinGasPriceGwei: "two"})
	require.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
}

func (s *clientSuite) TestSendSurvivesRecorderFailure() {
	recorder := &chainMocks.Recorder{}
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(tx *journal.Tx) bool {
		return tx.Method == "unlistNFT" && tx.Status == journal.TxStatusSuccess
	})).Return(errors.New("mongo down")).Once()
	im, err := New(s.eth, ClientCfg{ChainId: 365, ReceiptPoll: time.Millisecond}, WithRecorder(recorder))
	s.Require().NoError(err)

	s.eth.On("SuggestGasPrice", mock.Anything).Return(gwei(3), nil).Once()
	s.eth.On("PendingNonceAt", mock.Anything, s.from).Return(uint64(1), nil).Once()
	s.eth.On("SendTransaction", mock.Anything, mock.AnythingOfType("*types.Transaction")).Return(nil).Once()
	s.eth.On("TransactionReceipt", mock.Anything, mock.AnythingOfType("common.Hash")).
		Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(4)}, nil).Once()

	receipt, err := im.Send(s.ctx, s.provider, s.unlistParams())
	s.Require().NoError(err)
	s.Equal(types.ReceiptStatusSuccessful, receipt.Status)
	recorder.AssertExpectations(s.T())
}
