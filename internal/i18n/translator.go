/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package i18n provides localized user facing messages for the authentication frame.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strconv"

	"golang.org/x/text/language"

	"github.com/asgardeo/teamsauth/internal/system/log"
)

const loggerComponentName = "Translator"

// DefaultLanguage is used when the requested language cannot be matched.
const DefaultLanguage = "en"

//go:embed locales/*.json
var localeFS embed.FS

// supportedLanguages lists the embedded locales. The first entry is the matcher fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
}

var (
	matcher            = language.NewMatcher(supportedLanguages)
	placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)
)

// TranslatorInterface resolves message keys to localized text.
type TranslatorInterface interface {
	// GetMessage returns the localized message for key with {n} placeholders replaced by values.
	GetMessage(key string, values ...string) string
}

// Translator holds the message table of a single language.
type Translator struct {
	language string
	messages map[string]string
}

// NewTranslator negotiates the best supported language for the given tags and loads its messages.
// Unparseable or unsupported tags fall back to English.
func NewTranslator(languages ...string) *Translator {
	lang := MatchLanguage(languages...)
	return &Translator{
		language: lang,
		messages: loadMessages(lang),
	}
}

// NewTranslatorWithMessages creates a translator over an explicit message table.
func NewTranslatorWithMessages(lang string, messages map[string]string) *Translator {
	return &Translator{
		language: lang,
		messages: maps.Clone(messages),
	}
}

// Language returns the language the translator was loaded with.
func (t *Translator) Language() string {
	return t.language
}

// Messages returns a copy of the loaded message table.
func (t *Translator) Messages() map[string]string {
	return maps.Clone(t.messages)
}

// GetMessage returns the localized message for key, or an empty string when the key is unknown.
func (t *Translator) GetMessage(key string, values ...string) string {
	template, ok := t.messages[key]
	if !ok || template == "" {
		return ""
	}
	return ReplacePlaceholders(template, values...)
}

// ReplacePlaceholders replaces {0}, {1}... with the positional values.
// Placeholders without a value, or with an empty value, are left untouched.
func ReplacePlaceholders(template string, values ...string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		index, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || index >= len(values) || values[index] == "" {
			return match
		}
		return values[index]
	})
}

// MatchLanguage returns the base language of the best supported match for the given tags.
func MatchLanguage(languages ...string) string {
	_, index := language.MatchStrings(matcher, languages...)
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// SupportedLanguages returns the base codes of the embedded locales.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(supportedLanguages))
	for _, tag := range supportedLanguages {
		base, _ := tag.Base()
		codes = append(codes, base.String())
	}
	return codes
}

// loadMessages reads the embedded message table for lang. A missing or malformed table yields an empty one.
func loadMessages(lang string) map[string]string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	messages, err := readLocale(lang)
	if err != nil {
		logger.Error("Failed to load translations", log.String("language", lang), log.Error(err))
		return map[string]string{}
	}
	return messages
}

func readLocale(lang string) (map[string]string, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("locale %s not found: %w", lang, err)
	}

	messages := map[string]string{}
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("locale %s is malformed: %w", lang, err)
	}
	return messages, nil
}
