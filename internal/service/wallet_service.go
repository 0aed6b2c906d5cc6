package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/trymyday-shop/internal/constants"
	"github.com/trymyday-shop/internal/logger"
	"github.com/trymyday-shop/internal/models"
	"github.com/trymyday-shop/internal/queue"
	"github.com/trymyday-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService 钱包服务
type WalletService struct {
	walletRepo  repository.WalletRepository
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewWalletService 创建钱包服务
func NewWalletService(walletRepo repository.WalletRepository, userRepo repository.UserRepository, queueClient *queue.Client) *WalletService {
	return &WalletService{
		walletRepo:  walletRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// WalletCreditInput 管理员入账输入
type WalletCreditInput struct {
	UserID uint
	Amount models.Money
	Remark string
}

// WalletTransferInput 用户间转账输入
type WalletTransferInput struct {
	FromUserID uint
	ToUserID   uint
	Amount     models.Money
	Remark     string
}

// GetAccount 获取钱包账户（不存在时自动创建）
func (s *WalletService) GetAccount(userID uint) (*models.WalletAccount, error) {
	if userID == 0 {
		return nil, ErrWalletAccountNotFound
	}
	return s.getOrCreateAccount(s.walletRepo, userID)
}

// ListTransactions 查询钱包流水
func (s *WalletService) ListTransactions(filter repository.WalletTransactionListFilter) ([]models.WalletTransaction, int64, error) {
	return s.walletRepo.ListTransactions(filter)
}

// ListTransactionsForRole 按角色查询钱包流水
// 经理角色只能查看最近 30 天的流水，管理员不受限
func (s *WalletService) ListTransactionsForRole(role string, filter repository.WalletTransactionListFilter) ([]models.WalletTransaction, int64, error) {
	if role == constants.UserRoleManager {
		cutoff := time.Now().AddDate(0, 0, -constants.ManagerTxnWindowDays)
		if filter.CreatedFrom == nil || filter.CreatedFrom.Before(cutoff) {
			filter.CreatedFrom = &cutoff
		}
	}
	return s.walletRepo.ListTransactions(filter)
}

// PayOrder 在事务内用钱包余额支付订单
// 引用号按订单幂等，重复调用不会二次扣款
func (s *WalletService) PayOrder(tx *gorm.DB, order *models.Order) error {
	if order == nil || order.UserID == 0 {
		return ErrWalletAccountNotFound
	}
	amount := order.TotalAmount.Decimal.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	repo := s.walletRepo.WithTx(tx)
	reference := buildOrderWalletReference(order.ID, constants.WalletTxnTypeOrderPay)

	existing, err := repo.GetTransactionByReference(reference)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	account, err := s.getOrCreateAccount(repo, order.UserID)
	if err != nil {
		return err
	}
	balance := account.Balance.Decimal.Round(2)
	if balance.LessThan(amount) {
		return ErrWalletInsufficientFunds
	}

	account.Balance = models.NewMoneyFromDecimal(balance.Sub(amount))
	if err := repo.UpdateAccount(account); err != nil {
		return err
	}

	return repo.CreateTransaction(&models.WalletTransaction{
		UserID:       order.UserID,
		Type:         constants.WalletTxnTypeOrderPay,
		Direction:    constants.WalletTxnDirectionOut,
		Amount:       models.NewMoneyFromDecimal(amount),
		BalanceAfter: account.Balance,
		Reference:    reference,
		Description:  fmt.Sprintf("Paiement de la commande %s", order.OrderNo),
		OrderNo:      order.OrderNo,
	})
}

// RefundOrder 在事务内将订单金额退回钱包
func (s *WalletService) RefundOrder(tx *gorm.DB, order *models.Order, amount models.Money, remark string) (*models.WalletTransaction, error) {
	if order == nil || order.UserID == 0 {
		return nil, ErrWalletAccountNotFound
	}
	value := amount.Decimal.Round(2)
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}
	repo := s.walletRepo.WithTx(tx)
	reference := buildOrderWalletReference(order.ID, constants.WalletTxnTypeOrderRefund)

	existing, err := repo.GetTransactionByReference(reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	account, err := s.getOrCreateAccount(repo, order.UserID)
	if err != nil {
		return nil, err
	}
	account.Balance = models.NewMoneyFromDecimal(account.Balance.Decimal.Add(value).Round(2))
	if err := repo.UpdateAccount(account); err != nil {
		return nil, err
	}

	txn := &models.WalletTransaction{
		UserID:       order.UserID,
		Type:         constants.WalletTxnTypeOrderRefund,
		Direction:    constants.WalletTxnDirectionIn,
		Amount:       models.NewMoneyFromDecimal(value),
		BalanceAfter: account.Balance,
		Reference:    reference,
		Description:  cleanWalletDescription(remark, fmt.Sprintf("Remboursement de la commande %s", order.OrderNo)),
		OrderNo:      order.OrderNo,
	}
	if err := repo.CreateTransaction(txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// AdminCredit 管理员给用户钱包充值
func (s *WalletService) AdminCredit(input WalletCreditInput) (*models.WalletTransaction, error) {
	value := input.Amount.Decimal.Round(2)
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var txn *models.WalletTransaction
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.walletRepo.WithTx(tx)
		account, err := s.getOrCreateAccount(repo, input.UserID)
		if err != nil {
			return err
		}
		account.Balance = models.NewMoneyFromDecimal(account.Balance.Decimal.Add(value).Round(2))
		if err := repo.UpdateAccount(account); err != nil {
			return err
		}
		txn = &models.WalletTransaction{
			UserID:       input.UserID,
			Type:         constants.WalletTxnTypeAdminCredit,
			Direction:    constants.WalletTxnDirectionIn,
			Amount:       models.NewMoneyFromDecimal(value),
			BalanceAfter: account.Balance,
			Reference:    buildWalletReference("admin_credit"),
			Description:  cleanWalletDescription(input.Remark, "Crédit administrateur"),
		}
		return repo.CreateTransaction(txn)
	})
	if err != nil {
		return nil, err
	}
	s.notifyCredit(txn)
	return txn, nil
}

// Transfer 用户间余额转账
func (s *WalletService) Transfer(input WalletTransferInput) (*models.WalletTransaction, error) {
	value := input.Amount.Decimal.Round(2)
	if value.LessThanOrEqual(decimal.Zero) {
		return nil, ErrWalletInvalidAmount
	}
	if input.FromUserID == 0 || input.ToUserID == 0 || input.FromUserID == input.ToUserID {
		return nil, ErrWalletInvalidAmount
	}
	recipient, err := s.userRepo.GetByID(input.ToUserID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	var debit *models.WalletTransaction
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.walletRepo.WithTx(tx)
		from, err := s.getOrCreateAccount(repo, input.FromUserID)
		if err != nil {
			return err
		}
		if from.Balance.Decimal.Round(2).LessThan(value) {
			return ErrWalletInsufficientFunds
		}
		to, err := s.getOrCreateAccount(repo, input.ToUserID)
		if err != nil {
			return err
		}

		from.Balance = models.NewMoneyFromDecimal(from.Balance.Decimal.Sub(value).Round(2))
		if err := repo.UpdateAccount(from); err != nil {
			return err
		}
		to.Balance = models.NewMoneyFromDecimal(to.Balance.Decimal.Add(value).Round(2))
		if err := repo.UpdateAccount(to); err != nil {
			return err
		}

		debit = &models.WalletTransaction{
			UserID:       input.FromUserID,
			Type:         constants.WalletTxnTypeTransfer,
			Direction:    constants.WalletTxnDirectionOut,
			Amount:       models.NewMoneyFromDecimal(value),
			BalanceAfter: from.Balance,
			Reference:    buildWalletReference("transfer_out"),
			Description:  cleanWalletDescription(input.Remark, fmt.Sprintf("Transfert vers %s", recipient.Email)),
		}
		if err := repo.CreateTransaction(debit); err != nil {
			return err
		}
		return repo.CreateTransaction(&models.WalletTransaction{
			UserID:       input.ToUserID,
			Type:         constants.WalletTxnTypeTransfer,
			Direction:    constants.WalletTxnDirectionIn,
			Amount:       models.NewMoneyFromDecimal(value),
			BalanceAfter: to.Balance,
			Reference:    buildWalletReference("transfer_in"),
			Description:  cleanWalletDescription(input.Remark, "Transfert reçu"),
		})
	})
	if err != nil {
		return nil, err
	}
	return debit, nil
}

func (s *WalletService) notifyCredit(txn *models.WalletTransaction) {
	if s.queueClient == nil || txn == nil {
		return
	}
	err := s.queueClient.EnqueueWalletCreditEmail(queue.WalletCreditEmailPayload{
		UserID:        txn.UserID,
		TransactionID: txn.ID,
		Amount:        txn.Amount.String(),
	})
	if err != nil {
		logger.Warnw("wallet_credit_email_enqueue_failed",
			"user_id", txn.UserID,
			"reference", txn.Reference,
			"error", err,
		)
	}
}

func (s *WalletService) getOrCreateAccount(repo repository.WalletRepository, userID uint) (*models.WalletAccount, error) {
	account, err := repo.GetAccountByUserID(userID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}
	account = &models.WalletAccount{
		UserID:   userID,
		Balance:  models.NewMoneyFromInt(0),
		Currency: constants.ShopCurrency,
	}
	if err := repo.CreateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

func buildOrderWalletReference(orderID uint, action string) string {
	action = strings.TrimSpace(action)
	if action == "" {
		action = "wallet"
	}
	return fmt.Sprintf("order:%d:%s", orderID, action)
}

func buildWalletReference(prefix string) string {
	normalized := strings.TrimSpace(prefix)
	if normalized == "" {
		normalized = "wallet"
	}
	return fmt.Sprintf("%s:%s", normalized, uuid.NewString())
}

func cleanWalletDescription(remark, fallback string) string {
	remark = strings.TrimSpace(remark)
	if remark == "" {
		return fallback
	}
	return remark
}
