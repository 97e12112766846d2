package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Ledger() LedgerRepository
	Debts() DebtRepository
	Points() PointsRepository
	Withdrawals() WithdrawalRepository
	CheckIns() CheckInRepository
	Notifications() NotificationRepository
}
