// internal/domain/homework/message.go
package homework

import "fmt"

// FormatStatus renders the chat message for a review record.
func FormatStatus(hw Homework) (string, error) {
	name, ok := hw.Name()
	if !ok {
		return "", newError(KindMissingField, `Нет ключа "homework_name" в ответе API`)
	}
	status, ok := hw.Status()
	if !ok {
		return "", newError(KindMissingField, `Нет ключа "status" в ответе API`)
	}
	verdict, ok := Verdict(status)
	if !ok {
		return "", newError(KindUnknownStatus, fmt.Sprintf("Неизвестный статус работы %q", status))
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

// FormatFailure renders the diagnostic message sent when a cycle fails.
func FormatFailure(err error) string {
	return fmt.Sprintf("Сбой в работе программы: %v", err)
}
