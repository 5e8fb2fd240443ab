package scoring

import "risk-engine/internal/model"

// recommendations holds one fixed template per line and tier: a headline
// followed by guidance bullets.
var recommendations = map[model.InsuranceType]map[model.Tier][]string{
	model.InsuranceAuto: {
		model.TierHighRisk: {
			"High risk: Consider the following to get better insurance:",
			"Take a defensive driving course (10-15% discount)",
			"Install safety devices (GPS tracker, dashcam) - 5-10% discount",
			"Choose higher deductible to reduce premium",
			"Consider pay-as-you-drive insurance",
			"Recommended insurers: ICICI Lombard, Bajaj Allianz, HDFC ERGO",
		},
		model.TierModerateRisk: {
			"Moderate risk: Suggestions for better coverage:",
			"Compare quotes from multiple insurers",
			"Consider comprehensive coverage with add-ons",
			"Maintain good driving record for NCB benefits",
			"Install anti-theft devices for discounts",
			"Recommended insurers: TATA AIG, New India Assurance, Oriental Insurance",
		},
		model.TierLowRisk: {
			"Low risk: You qualify for preferred rates:",
			"Excellent driving record - claim maximum NCB",
			"Consider comprehensive coverage with zero depreciation",
			"Look for loyalty discounts with existing insurers",
			"Bundle with other insurance for additional savings",
			"Recommended insurers: IFFCO Tokio, SBI General, Reliance General",
		},
	},
	model.InsuranceProperty: {
		model.TierHighRisk: {
			"High risk: Essential protection strategies:",
			"Get comprehensive home insurance with natural disaster coverage",
			"Install security systems (CCTV, alarms) for 10-15% discount",
			"Consider flood insurance as separate add-on",
			"Upgrade electrical and plumbing systems",
			"Recommended insurers: HDFC ERGO, ICICI Lombard, Bajaj Allianz",
			"Consider: Fire insurance, earthquake cover, burglary protection",
		},
		model.TierModerateRisk: {
			"Moderate risk: Optimization suggestions:",
			"Compare home insurance policies from multiple providers",
			"Add valuable items coverage for electronics/jewelry",
			"Consider home loan protection insurance",
			"Install water leak detectors and smoke alarms",
			"Recommended insurers: TATA AIG, New India Assurance, SBI General",
			"Useful add-ons: Personal accident cover, temporary accommodation",
		},
		model.TierLowRisk: {
			"Low risk: Premium optimization opportunities:",
			"Excellent property profile - negotiate better rates",
			"Bundle home and auto insurance for discounts",
			"Consider increasing deductible to lower premium",
			"Maintain property well for continued low risk",
			"Recommended insurers: IFFCO Tokio, Oriental Insurance, Reliance General",
			"Consider: Home loan insurance, content insurance for valuables",
		},
	},
	model.InsuranceCyber: {
		model.TierHighRisk: {
			"High risk: Immediate cybersecurity improvements needed:",
			"Implement comprehensive cybersecurity policy",
			"Enable multi-factor authentication across all systems",
			"Conduct employee cybersecurity training",
			"Install endpoint detection and response (EDR) solutions",
			"Regular security audits and penetration testing",
			"Recommended insurers: HDFC ERGO, Bajaj Allianz, ICICI Lombard",
			"Essential coverages: Data breach response, business interruption, cyber extortion",
		},
		model.TierModerateRisk: {
			"Moderate risk: Enhance your cyber protection:",
			"Review and update existing security policies",
			"Implement advanced threat detection systems",
			"Regular backup and disaster recovery testing",
			"Cyber awareness training for all employees",
			"Consider cyber liability insurance with higher limits",
			"Recommended insurers: TATA AIG, New India Assurance, SBI General",
			"Useful add-ons: Reputation management, regulatory fines coverage",
		},
		model.TierLowRisk: {
			"Low risk: Excellent cybersecurity posture:",
			"Maintain current security standards",
			"Consider premium cyber insurance for comprehensive protection",
			"Continuous monitoring and threat intelligence",
			"Regular compliance audits and certifications",
			"Cyber insurance with worldwide coverage",
			"Recommended insurers: IFFCO Tokio, Oriental Insurance, Reliance General",
			"Advanced coverages: Supply chain liability, privacy liability, cloud security",
		},
	},
	model.InsuranceHealth: {
		model.TierHighRisk: {
			"High risk: Health improvement and insurance strategies:",
			"Join wellness programs for premium discounts (up to 30% off)",
			"Consider health insurance with preventive care coverage",
			"Quit smoking - many insurers offer cessation program discounts",
			"Regular health checkups and maintain medical records",
			"Look into government schemes: Ayushman Bharat, ESIC",
			"Recommended insurers: Star Health, Max Bupa, Apollo Munich",
			"Essential features: Pre-existing disease cover, maternity benefits, critical illness rider",
		},
		model.TierModerateRisk: {
			"Moderate risk: Optimize your health insurance:",
			"Compare family floater vs individual policies",
			"Add critical illness and accidental death riders",
			"Maintain continuous coverage for waiting period benefits",
			"Use preventive care benefits for annual checkups",
			"Consider top-up or super top-up policies for higher coverage",
			"Recommended insurers: HDFC ERGO, ICICI Lombard, Bajaj Allianz",
			"Useful add-ons: OPD coverage, alternative treatment, mental health coverage",
		},
		model.TierLowRisk: {
			"Low risk: Excellent health profile advantages:",
			"Qualify for preferred rates and comprehensive coverage",
			"Consider high-value policies with global coverage",
			"Take advantage of wellness program benefits and rewards",
			"Long-term premium discounts for claim-free years",
			"Family health insurance with lifetime renewability",
			"Recommended insurers: TATA AIG, SBI General, New India Assurance",
			"Premium features: International coverage, organ transplant, experimental treatments",
		},
	},
	model.InsuranceLife: {
		model.TierHighRisk: {
			"High risk: Specialized life insurance strategies:",
			"Consider guaranteed acceptance life insurance (no medical exams)",
			"Look into group life insurance through employer",
			"Explore government life insurance schemes: LIC, Postal Life Insurance",
			"Consider term insurance with return of premium",
			"Recommended insurers: LIC, SBI Life, HDFC Life",
			"Important riders: Accidental death, disability waiver, critical illness",
			"Alternative: Employer group insurance, union-sponsored policies",
		},
		model.TierModerateRisk: {
			"Moderate risk: Balanced life insurance approach:",
			"Compare term vs whole life insurance based on needs",
			"Consider ULIP (Unit Linked Insurance Plans) for investment + insurance",
			"Add riders for comprehensive protection",
			"Explore online term insurance for competitive rates",
			"Recommended insurers: ICICI Prudential, Bajaj Allianz, Max Life",
			"Useful features: Premium waiver, income replacement, education fund",
			"Consider: Increasing term cover, decreasing term cover based on liabilities",
		},
		model.TierLowRisk: {
			"Low risk: Premium life insurance opportunities:",
			"Excellent profile - negotiate best rates with multiple insurers",
			"Consider high-value term insurance with comprehensive riders",
			"Explore investment-linked life insurance for wealth creation",
			"Consider whole life insurance for estate planning",
			"Recommended insurers: TATA AIA, Aditya Birla, Kotak Life",
			"Premium features: Global coverage, flexible premiums, bonus additions",
			"Advanced options: Variable life insurance, offshore life insurance",
		},
	},
}

// recommendationFor returns a copy of the template so callers cannot mutate
// the shared table.
func recommendationFor(line model.InsuranceType, tier model.Tier) []string {
	tmpl := recommendations[line][tier]
	out := make([]string, len(tmpl))
	copy(out, tmpl)
	return out
}
