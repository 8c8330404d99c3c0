package domain

import "fmt"

// DefaultRechargeAmount is the simulated wallet top-up credit.
const DefaultRechargeAmount int64 = 5000

// Subscribe charges studentID the channel price and adds them to the channel.
// On any error the returned snapshot is the input, untouched.
//
// The owning professor's StudentCount is bumped once per successful
// subscription, so a student in two of the same professor's channels counts
// twice.
func Subscribe(s Snapshot, studentID, channelID string) (Snapshot, error) {
	student, _, err := lookupStudent(s, studentID)
	if err != nil {
		return s, fmt.Errorf("subscribe: %w", err)
	}
	channel, _, ok := s.FindChannel(channelID)
	if !ok {
		return s, fmt.Errorf("subscribe: channel %q: %w", channelID, ErrInvalidArgument)
	}
	if channel.Price < 0 {
		return s, fmt.Errorf("subscribe: channel %q has negative price: %w", channelID, ErrInvalidArgument)
	}
	if _, _, ok := s.FindUser(channel.ProfessorID); !ok {
		return s, fmt.Errorf("subscribe: owner of channel %q missing: %w", channelID, ErrInvalidArgument)
	}
	if channel.HasSubscriber(studentID) {
		return s, fmt.Errorf("subscribe: %w", ErrAlreadySubscribed)
	}
	if student.WalletBalance < channel.Price {
		return s, fmt.Errorf("subscribe: balance %d below price %d: %w", student.WalletBalance, channel.Price, ErrInsufficientFunds)
	}

	next := s.Clone()
	_, si, _ := next.FindUser(studentID)
	_, ci, _ := next.FindChannel(channelID)
	_, pi, _ := next.FindUser(channel.ProfessorID)

	next.Channels[ci].Subscribers = append(next.Channels[ci].Subscribers, studentID)
	next.Users[si].WalletBalance -= channel.Price
	next.Users[pi].StudentCount++
	return next, nil
}

// Recharge credits amount to a student's wallet.
func Recharge(s Snapshot, studentID string, amount int64) (Snapshot, error) {
	if amount <= 0 {
		return s, fmt.Errorf("recharge: amount %d: %w", amount, ErrInvalidArgument)
	}
	if _, _, err := lookupStudent(s, studentID); err != nil {
		return s, fmt.Errorf("recharge: %w", err)
	}

	next := s.Clone()
	_, si, _ := next.FindUser(studentID)
	next.Users[si].WalletBalance += amount
	return next, nil
}

func lookupStudent(s Snapshot, id string) (User, int, error) {
	u, i, ok := s.FindUser(id)
	if !ok {
		return User{}, -1, fmt.Errorf("user %q: %w", id, ErrInvalidArgument)
	}
	if u.Role != RoleStudent {
		return User{}, -1, fmt.Errorf("user %q is a %s, not a student: %w", id, u.Role, ErrInvalidArgument)
	}
	return u, i, nil
}
