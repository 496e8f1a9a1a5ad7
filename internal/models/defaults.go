package models

import "time"

// defaultProjects is the bundled showcase set served when the remote store
// holds nothing for a filter or is unreachable. Ids use the reserved
// "default-" prefix so they can never collide with timestamp-based admin ids.
var defaultProjects = []Project{
	{
		ID:          "default-smart-tower",
		Title:       "삼성전자 스마트캠퍼스 통합관제 구축",
		Description: "Integrated building automation and energy monitoring for the Samsung Electronics smart campus, covering HVAC, lighting, and access control across four towers.",
		Category:    CategorySmartBuilding,
		Client:      "Samsung Electronics",
		Duration:    "2022.03 - 2023.08",
		TeamSize:    "24명",
		Overview: ProjectOverview{
			Period:   "2022.03 - 2023.08",
			Area:     "연면적 182,000㎡",
			Features: []string{"통합관제 플랫폼", "에너지 모니터링", "출입통제 연동"},
			Effects:  "에너지 사용량 18% 절감",
		},
		IsFeatured:  true,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "default-city-library",
		Title:       "시립 중앙도서관 리모델링",
		Description: "Full mechanical and electrical renovation of the municipal central library, including a new reading-room climate system and barrier-free facilities.",
		Category:    CategoryPublicFacility,
		Client:      "성남시",
		Duration:    "2021.05 - 2022.02",
		TeamSize:    "15명",
		Overview: ProjectOverview{
			Period:   "2021.05 - 2022.02",
			Area:     "연면적 12,400㎡",
			Features: []string{"열람실 공조 개선", "무장애 설비", "태양광 연계"},
			Effects:  "이용객 만족도 92% 달성",
		},
		IsFeatured:  true,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "default-semicon-fab",
		Title:       "반도체 후공정 팹 클린룸 설비",
		Description: "Class 1000 cleanroom utilities and process piping for a semiconductor back-end fab, delivered without interrupting the adjacent production line.",
		Category:    CategoryIndustrial,
		Client:      "SK hynix",
		Duration:    "2020.09 - 2021.12",
		TeamSize:    "32명",
		Overview: ProjectOverview{
			Period:   "2020.09 - 2021.12",
			Area:     "연면적 45,000㎡",
			Features: []string{"클린룸 공조", "특수가스 배관", "무정전 시공"},
			Effects:  "가동 중단 없이 준공",
		},
		IsFeatured:  false,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "default-idc-campus",
		Title:       "수도권 하이퍼스케일 데이터센터",
		Description: "Electrical backbone and cooling plant for a hyperscale data center campus, designed for 40MW IT load with N+1 redundancy.",
		Category:    CategoryLogisticsDC,
		Client:      "LG CNS",
		Duration:    "2023.01 - 2024.06",
		TeamSize:    "41명",
		Overview: ProjectOverview{
			Period:   "2023.01 - 2024.06",
			Area:     "연면적 68,000㎡",
			Features: []string{"40MW 수전설비", "프리쿨링 냉방", "N+1 이중화"},
			Effects:  "PUE 1.25 달성",
		},
		IsFeatured:  true,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "default-arts-center",
		Title:       "복합문화예술회관 무대설비",
		Description: "Stage machinery, acoustic treatment, and house lighting for a 1,200-seat multi-purpose arts center.",
		Category:    CategoryCulturalFacility,
		Client:      "고양문화재단",
		Duration:    "2019.04 - 2020.10",
		TeamSize:    "18명",
		Overview: ProjectOverview{
			Period:   "2019.04 - 2020.10",
			Area:     "객석 1,200석",
			Features: []string{"무대기계", "음향설비", "조명제어"},
			Effects:  "개관 첫해 가동률 87%",
		},
		IsFeatured:  false,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2020, 11, 20, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2020, 11, 20, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2020, 11, 20, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "default-resort-marina",
		Title:       "남해 마리나 리조트 단지",
		Description: "Site-wide utilities and smart room control for a waterfront resort complex with marina support buildings.",
		Category:    CategoryTouristFacility,
		Client:      "한화호텔앤드리조트",
		Duration:    "2021.02 - 2022.09",
		TeamSize:    "22명",
		Overview: ProjectOverview{
			Period:   "2021.02 - 2022.09",
			Area:     "연면적 54,000㎡",
			Features: []string{"객실 스마트제어", "마리나 전력설비", "중수도 시스템"},
			Effects:  "객실 에너지 비용 22% 절감",
		},
		IsFeatured:  false,
		IsPublished: true,
		PublishedAt: timePtr(time.Date(2022, 10, 5, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Date(2022, 10, 5, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2022, 10, 5, 0, 0, 0, 0, time.UTC),
	},
}

// DefaultProjects returns a fresh copy of the bundled record set so callers
// can tag and filter without mutating the shared slice
func DefaultProjects() []Project {
	out := make([]Project, len(defaultProjects))
	copy(out, defaultProjects)
	for i := range out {
		out[i].Overview.Features = append([]string(nil), defaultProjects[i].Overview.Features...)
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
