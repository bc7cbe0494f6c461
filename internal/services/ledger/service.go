package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"ewallet/internal/domain"
)

// Service implements the wallet use cases over the user store and the
// single-slot session registry.
//
// A single mutex serialises operations end to end: the "already logged in"
// check and the slot overwrite form one atomic step, and a transfer's debit
// and credit land inside one critical section so the sender+recipient total
// is conserved. Every operation runs all of its checks before touching
// either store; a failure leaves all state unchanged.
type Service struct {
	mu       sync.Mutex
	users    domain.UserStore
	sessions domain.SessionStore
}

// New returns a ledger service backed by the given stores.
func New(users domain.UserStore, sessions domain.SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register creates a user with a fresh id and a zero-balance wallet. Names
// are unique case-insensitively; a folded-name collision fails the call.
// Registration never touches the session slot.
func (s *Service) Register(name domain.Username) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.User{}, domain.ErrMissingArgument
	}
	if _, ok, err := s.users.FindUserByName(name); err != nil {
		return domain.User{}, err
	} else if ok {
		return domain.User{}, domain.ErrUserExists
	}

	user := domain.NewUser(name)
	if err := s.users.SaveUser(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login creates a session for the named user and installs it in the slot.
//
// A session already held by this same user fails with ErrAlreadyLoggedIn and
// changes nothing. A session held by a different user is silently evicted:
// logging in switches the slot to the new user (implicit logout).
func (s *Service) Login(name domain.Username) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return domain.Session{}, domain.ErrMissingArgument
	}
	user, ok, err := s.users.FindUserByName(name)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrUserNotFound
	}
	if _, ok, err := s.sessions.FindSessionByUserName(name); err != nil {
		return domain.Session{}, err
	} else if ok {
		return domain.Session{}, domain.ErrAlreadyLoggedIn
	}

	session := domain.NewSession(user)
	if err := s.sessions.ClearSession(); err != nil {
		return domain.Session{}, err
	}
	if err := s.sessions.SaveSession(session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Logout empties the session slot and returns the name of the user that held
// it, for the confirmation message.
func (s *Service) Logout() (domain.Username, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok, err := s.sessions.CurrentSession()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotLoggedIn
	}
	if err := s.sessions.ClearSession(); err != nil {
		return "", err
	}
	return session.UserName, nil
}

// Balance returns the active user's name and current wallet balance. It
// mutates nothing.
func (s *Service) Balance() (domain.BalanceStatement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.currentUser()
	if err != nil {
		return domain.BalanceStatement{}, err
	}
	return domain.BalanceStatement{UserName: user.Name, Balance: user.Wallet.Balance}, nil
}

// TopUp credits the active user's wallet with the parsed amount and persists
// the updated user.
func (s *Service) TopUp(amountText string) (domain.TopUpReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.currentUser()
	if err != nil {
		return domain.TopUpReceipt{}, err
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return domain.TopUpReceipt{}, err
	}

	user.Wallet.Balance = user.Wallet.Balance.Add(amount)
	if err := s.users.SaveUser(user); err != nil {
		return domain.TopUpReceipt{}, err
	}
	return domain.TopUpReceipt{Amount: amount, Balance: user.Wallet.Balance}, nil
}

// Transfer moves the parsed amount from the active user to the named
// recipient. Checks run in order: active session, both arguments present,
// recipient differs from sender, recipient exists, amount parses, amount
// positive, sender balance sufficient. Only then are the debit and credit
// applied, and both users persisted together.
func (s *Service) Transfer(recipient domain.Username, amountText string) (domain.TransferReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.currentUser()
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	if recipient == "" || amountText == "" {
		return domain.TransferReceipt{}, domain.ErrMissingArguments
	}
	if recipient.Equal(sender.Name) {
		return domain.TransferReceipt{}, domain.ErrSelfTransfer
	}
	target, ok, err := s.users.FindUserByName(recipient)
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	if !ok {
		return domain.TransferReceipt{}, domain.ErrUserNotFound
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return domain.TransferReceipt{}, err
	}
	if sender.Wallet.Balance.LessThan(amount) {
		return domain.TransferReceipt{}, &domain.InsufficientBalanceError{
			Balance:  sender.Wallet.Balance,
			Required: amount,
		}
	}

	sender.Wallet.Balance = sender.Wallet.Balance.Sub(amount)
	target.Wallet.Balance = target.Wallet.Balance.Add(amount)
	if err := s.users.SaveUser(sender); err != nil {
		return domain.TransferReceipt{}, err
	}
	if err := s.users.SaveUser(target); err != nil {
		return domain.TransferReceipt{}, err
	}
	return domain.TransferReceipt{
		Recipient: target.Name,
		Amount:    amount,
		Balance:   sender.Wallet.Balance,
	}, nil
}

// currentUser resolves the active session to a snapshot of its user.
// Callers hold s.mu.
func (s *Service) currentUser() (domain.User, error) {
	session, ok, err := s.sessions.CurrentSession()
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		return domain.User{}, domain.ErrNotLoggedIn
	}
	user, ok, err := s.users.FindUserByID(session.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		// Users are never deleted, so a dangling session means the stores
		// were swapped out underneath us. Treat it as no session.
		return domain.User{}, domain.ErrNotLoggedIn
	}
	return user, nil
}

// parseAmount validates an amount argument: present, numeric, strictly
// positive. Zero is rejected. Comparisons downstream are exact decimal
// comparisons with no epsilon.
func parseAmount(text string) (decimal.Decimal, error) {
	if text == "" {
		return decimal.Decimal{}, domain.ErrMissingArgument
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, domain.ErrNonPositiveAmount
	}
	return amount, nil
}

// Compile-time assertion that Service implements domain.LedgerService.
var _ domain.LedgerService = (*Service)(nil)
