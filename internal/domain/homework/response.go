// internal/domain/homework/response.go
package homework

import "fmt"

const keyHomeworks = "homeworks"

// ExtractLatest validates the payload shape and returns the newest record.
// The API lists homeworks newest first.
func ExtractLatest(payload any) (Homework, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return nil, newError(KindSchema, "Тип ответа не словарь")
	}

	raw, ok := response[keyHomeworks]
	if !ok {
		return nil, newError(KindMissingData, fmt.Sprintf("Отсутствуют данные в: %v", response))
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, newError(KindSchema, "Тип ответа не список")
	}
	if len(homeworks) == 0 {
		return nil, newError(KindEmptyResult, "Список работ пуст")
	}

	latest, ok := homeworks[0].(map[string]any)
	if !ok {
		return nil, newError(KindSchema, "Тип работы не словарь")
	}
	return Homework(latest), nil
}
